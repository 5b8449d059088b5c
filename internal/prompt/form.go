package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/videojs/vjsplugin/internal/license"
	"github.com/videojs/vjsplugin/internal/naming"
	"github.com/videojs/vjsplugin/internal/project"
)

// FormAsker asks every question that is not skipped through a huh form.
type FormAsker struct {
	// Accessible switches huh to plain line-based prompts.
	Accessible bool
}

var featureLabels = map[string]string{
	project.KeyCSS:       "Do you want to include CSS styling?",
	project.KeyDocs:      "Do you want to include documentation tooling?",
	project.KeyLang:      "Do you want to include video.js language support?",
	project.KeyLibrary:   "Do you want to publish es/ and cjs/ builds for library use?",
	project.KeyPrecommit: "Do you want to lint changes before each commit?",
	project.KeyPrepush:   "Do you want to run tests before each push?",
}

// Ask runs the form and returns the answers. Skipped questions keep the
// value from d.
func (a FormAsker) Ask(d Defaults, skip Skip) (project.Options, error) {
	o := d
	var identity, choices, features []huh.Field

	for _, key := range questions(skip) {
		switch key {
		case project.KeyName:
			identity = append(identity, huh.NewInput().
				Title("Enter the name of this plugin (a-z/0-9/- only; will be prefixed with \""+naming.Prefix+"\")").
				Value(&o.Name).
				Validate(naming.ValidateName))
		case project.KeyScope:
			identity = append(identity, huh.NewInput().
				Title("Enter a package scope, if any, for npm (optional)").
				Value(&o.Scope).
				Validate(naming.ValidateScope))
		case project.KeyAuthor:
			identity = append(identity, huh.NewInput().
				Title("Enter the author of this plugin").
				Value(&o.Author))
		case project.KeyDescription:
			identity = append(identity, huh.NewInput().
				Title("Enter a description for this plugin").
				Value(&o.Description))
		case project.KeyLicense:
			choices = append(choices, huh.NewSelect[string]().
				Title("Choose a license for your project").
				Options(licenseOptions()...).
				Value(&o.License))
		case project.KeyPluginType:
			choices = append(choices, huh.NewSelect[string]().
				Title("Choose a type for your plugin").
				Options(
					huh.NewOption("Advanced plugin (class-based)", project.PluginAdvanced),
					huh.NewOption("Basic plugin (function-based)", project.PluginBasic),
				).
				Value(&o.PluginType))
		case project.KeyBuilder:
			choices = append(choices, huh.NewSelect[string]().
				Title("Choose a build tool").
				Options(
					huh.NewOption("npm scripts and rollup", project.BuilderNPM),
					huh.NewOption("Grunt", project.BuilderGrunt),
				).
				Value(&o.Builder))
		default:
			if v := boolField(&o, key); v != nil {
				features = append(features, huh.NewConfirm().
					Title(featureLabels[key]).
					Value(v))
			}
		}
	}

	var groups []*huh.Group
	for _, fields := range [][]huh.Field{identity, choices, features} {
		if len(fields) > 0 {
			groups = append(groups, huh.NewGroup(fields...))
		}
	}
	if len(groups) > 0 {
		if err := huh.NewForm(groups...).WithAccessible(a.Accessible).Run(); err != nil {
			return project.Options{}, fmt.Errorf("prompting for options: %w", err)
		}
	}

	return normalize(o), nil
}

func licenseOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range license.Choices() {
		opts = append(opts, huh.NewOption(c.Label, c.Key))
	}
	return opts
}

// boolField returns the address of the feature flag named key.
func boolField(o *project.Options, key string) *bool {
	switch key {
	case project.KeyCSS:
		return &o.CSS
	case project.KeyDocs:
		return &o.Docs
	case project.KeyLang:
		return &o.Lang
	case project.KeyLibrary:
		return &o.Library
	case project.KeyPrecommit:
		return &o.Precommit
	case project.KeyPrepush:
		return &o.Prepush
	}
	return nil
}
