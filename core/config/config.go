package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
)

// Configuration holds the session defaults. The built-in values reproduce
// the stock appliance login profile; sites override them via config.yaml.
type Configuration struct {
	// FallbackLocale replaces an unset, empty, or bare "C" LANG.
	FallbackLocale string `json:"fallback_locale" validate:"required,ne=C"`

	Editor    string `json:"editor" validate:"required"`
	Pager     string `json:"pager" validate:"required"`
	BlockSize string `json:"block_size" validate:"required"`

	PromptSuffixes PromptSuffixes `json:"prompt_suffixes"`

	Privileged Privileged `json:"privileged"`
}

// PromptSuffixes mark the identity class in the prompt, before the
// trailing space.
type PromptSuffixes struct {
	Privileged string `json:"privileged" validate:"required"`
	Standard   string `json:"standard" validate:"required"`
}

// Privileged holds the overrides applied only to uid 0 sessions.
type Privileged struct {
	Pager string `json:"pager" validate:"required"`

	// Path is the ordered search path; ExtraPath is a site-specific entry
	// always appended last.
	Path      []string `json:"path" validate:"min=1,dive,required,startswith=/"`
	ExtraPath string   `json:"extra_path" validate:"omitempty,startswith=/"`

	// Term is used only when the caller supplied no TERM at all.
	Term string `json:"term" validate:"required"`

	Home string `json:"home" validate:"required,startswith=/"`

	// History files live outside Home because Home may be mounted
	// read-only. The pid is appended to the prefix at runtime.
	HistoryDir    string `json:"history_dir" validate:"required,startswith=/"`
	HistoryPrefix string `json:"history_prefix" validate:"required"`

	// InitFileName is the per-session init file, relative to Home.
	InitFileName string `json:"init_file_name" validate:"required"`

	// EditMode names the interactive line-editing mode.
	EditMode string `json:"edit_mode" validate:"required"`
}

// PathString renders the search path as a colon-delimited list with the
// site-specific extra entry last.
func (p Privileged) PathString() string {
	entries := append([]string{}, p.Path...)
	if p.ExtraPath != "" {
		entries = append(entries, p.ExtraPath)
	}
	return strings.Join(entries, ":")
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// Shipped inside the binary, so a parse failure is a build defect.
		panic(err)
	}
	return &out
}
