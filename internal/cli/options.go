package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/videojs/vjsplugin/internal/config"
	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/prompt"
	"github.com/videojs/vjsplugin/internal/scaffold"
	"github.com/videojs/vjsplugin/internal/vcs"
)

// optionFlags binds one flag per generation option. Only flags the user
// actually passed override the resolved defaults.
type optionFlags struct {
	opts   project.Options
	policy string
}

func (f *optionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.opts.Name, project.KeyName, "", "Plugin name, with or without the videojs- prefix")
	fs.StringVar(&f.opts.Scope, project.KeyScope, "", "npm scope, without the @")
	fs.StringVar(&f.opts.Author, project.KeyAuthor, "", "Author written to package.json and LICENSE")
	fs.StringVar(&f.opts.Description, project.KeyDescription, "", "Plugin description")
	fs.StringVar(&f.opts.License, project.KeyLicense, "", fmt.Sprintf("License key, one of %v", licenseKeys()))
	fs.StringVar(&f.opts.PluginType, "plugin-type", "", fmt.Sprintf("Plugin type, one of %v", project.PluginTypes()))
	fs.StringVar(&f.opts.Builder, project.KeyBuilder, "", fmt.Sprintf("Build tool, one of %v", project.Builders()))
	fs.BoolVar(&f.opts.CSS, project.KeyCSS, false, "Include CSS tooling")
	fs.BoolVar(&f.opts.Docs, project.KeyDocs, false, "Include documentation tooling")
	fs.BoolVar(&f.opts.Lang, project.KeyLang, false, "Include video.js language support")
	fs.BoolVar(&f.opts.Library, project.KeyLibrary, false, "Publish es/ and cjs/ builds")
	fs.BoolVar(&f.opts.Precommit, project.KeyPrecommit, false, "Lint staged changes before each commit")
	fs.BoolVar(&f.opts.Prepush, project.KeyPrepush, false, "Run tests before each push")
	fs.StringVar(&f.policy, config.KeyPolicy, "", fmt.Sprintf("Organization policy, one of %v", prompt.PolicyNames()))
}

// apply copies the changed flags onto d and marks their prompts skipped.
func (f *optionFlags) apply(fs *pflag.FlagSet, d prompt.Defaults, skip prompt.Skip) (prompt.Defaults, prompt.Skip) {
	if skip == nil {
		skip = prompt.Skip{}
	}
	set := func(flag, key string, assign func()) {
		if fs.Changed(flag) {
			assign()
			skip[key] = true
		}
	}
	set(project.KeyName, project.KeyName, func() { d.Name = f.opts.Name })
	set(project.KeyScope, project.KeyScope, func() { d.Scope = f.opts.Scope })
	set(project.KeyAuthor, project.KeyAuthor, func() { d.Author = f.opts.Author })
	set(project.KeyDescription, project.KeyDescription, func() { d.Description = f.opts.Description })
	set(project.KeyLicense, project.KeyLicense, func() { d.License = f.opts.License })
	set("plugin-type", project.KeyPluginType, func() { d.PluginType = f.opts.PluginType })
	set(project.KeyBuilder, project.KeyBuilder, func() { d.Builder = f.opts.Builder })
	set(project.KeyCSS, project.KeyCSS, func() { d.CSS = f.opts.CSS })
	set(project.KeyDocs, project.KeyDocs, func() { d.Docs = f.opts.Docs })
	set(project.KeyLang, project.KeyLang, func() { d.Lang = f.opts.Lang })
	set(project.KeyLibrary, project.KeyLibrary, func() { d.Library = f.opts.Library })
	set(project.KeyPrecommit, project.KeyPrecommit, func() { d.Precommit = f.opts.Precommit })
	set(project.KeyPrepush, project.KeyPrepush, func() { d.Prepush = f.opts.Prepush })
	return d, skip
}

// resolveDefaults layers the persisted answers and package.json found in
// dir, the user config, the git identity, the policy and finally the flags.
func (f *optionFlags) resolveDefaults(cmd *cobra.Command, dir string) (prompt.Defaults, prompt.Skip, error) {
	answers, err := project.LoadAnswers(dir)
	if err != nil {
		return prompt.Defaults{}, nil, err
	}
	existing, err := scaffold.ReadManifest(dir)
	if err != nil {
		return prompt.Defaults{}, nil, err
	}

	src := prompt.Sources{Existing: existing, User: config.Viper()}
	if answers != nil {
		src.Persisted = answers
		recorded := answers.GetString("generatorVersion")
		if project.GeneratedByNewer(recorded, buildVersion) {
			logger.Warn("project was generated by a newer generator", "recorded", recorded, "running", buildVersion)
		}
		logger.Debug("using persisted answers", "path", project.AnswersPath(dir))
	}
	d := prompt.Resolve(src)

	if d.Author == "" {
		d.Author = vcs.Author()
	}

	var skip prompt.Skip
	policyName := f.policy
	if !cmd.Flags().Changed(config.KeyPolicy) {
		policyName = config.Get(config.KeyPolicy)
	}
	if policyName != "" {
		p, err := prompt.LookupPolicy(policyName)
		if err != nil {
			return prompt.Defaults{}, nil, err
		}
		d, skip = prompt.ApplyPolicy(d, p)
		logger.Debug("applied policy", "policy", p.Name)
	}

	d, skip = f.apply(cmd.Flags(), d, skip)
	return d, skip, nil
}

func licenseKeys() []string {
	var keys []string
	for _, c := range license.Choices() {
		keys = append(keys, c.Key)
	}
	return keys
}
