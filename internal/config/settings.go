package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"cratekeeper/internal/audio"
	"cratekeeper/internal/deposit"
	"cratekeeper/internal/errs"
	"cratekeeper/internal/resolve"
	"cratekeeper/internal/template"
)

// Step identifies one stage of a processing run.
type Step string

const (
	StepDownload Step = "download"
	StepTag      Step = "tag"
	StepDeposit  Step = "deposit"
	StepClean    Step = "clean"
)

// ParseStep maps a configured step name to a Step.
func ParseStep(text string) (Step, error) {
	switch Step(text) {
	case StepDownload, StepTag, StepDeposit, StepClean:
		return Step(text), nil
	default:
		return "", errs.Wrapf(errs.ErrConfig, "unknown step %q", text)
	}
}

// Settings holds all configuration options of a library.
type Settings struct {
	// Library description shown by the show command.
	Description string `toml:"description"`

	// Steps run by the process command, in order.
	Steps []string `toml:"steps"`

	// Directories, relative to the library root unless absolute.
	InputDir  string `toml:"input_dir"`
	TargetDir string `toml:"target_dir"`

	// Deposit layout: drop, a-z or date.
	Organize string `toml:"organize"`

	// Confirmation shortcuts
	OverrideArtist bool `toml:"override_artist"`
	AutoTag        bool `toml:"auto_tag"`
	AutoOverwrite  bool `toml:"auto_overwrite"`
	AutoScrape     bool `toml:"auto_scrape"`

	ClearInput bool `toml:"clear_input"`
	Verbose    bool `toml:"verbose"`

	// Rendering templates
	TitleTemplate    string `toml:"title_template"`
	FilenameTemplate string `toml:"filename_template"`

	// Artwork settings
	NormalizeArtwork bool `toml:"normalize_artwork"`
	ArtworkMaxEdge   int  `toml:"artwork_max_edge"`

	// Downloader settings
	YtDlpPath   string `toml:"yt_dlp_path"`
	SearchLimit int    `toml:"search_limit"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Steps:     []string{"download", "tag", "deposit"},
		InputDir:  "in",
		TargetDir: "out",
		Organize:  "drop",

		ClearInput: true,

		TitleTemplate:    "{title} ({feat}) [{remix}]",
		FilenameTemplate: "{artist} - {title}",

		ArtworkMaxEdge: 800,

		YtDlpPath:   "yt-dlp",
		SearchLimit: 5,
	}
}

// Load reads settings from a TOML file. A missing file yields defaults;
// a malformed one is a configuration error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, errs.Wrap(errs.ErrConfig, "read config", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, errs.Wrap(errs.ErrConfig, "parse config", err)
	}

	settings.normalize()
	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errs.Wrap(errs.ErrIO, "create config dir", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return errs.Wrap(errs.ErrConfig, "encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.Wrap(errs.ErrIO, "write config", err)
	}
	return nil
}

// normalize fills empty fields with their defaults so an explicitly
// blanked key behaves like an absent one.
func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if len(s.Steps) == 0 {
		s.Steps = defaults.Steps
	}
	if s.InputDir == "" {
		s.InputDir = defaults.InputDir
	}
	if s.TargetDir == "" {
		s.TargetDir = defaults.TargetDir
	}
	if s.Organize == "" {
		s.Organize = defaults.Organize
	}
	if s.TitleTemplate == "" {
		s.TitleTemplate = defaults.TitleTemplate
	}
	if s.FilenameTemplate == "" {
		s.FilenameTemplate = defaults.FilenameTemplate
	}
	if s.ArtworkMaxEdge == 0 {
		s.ArtworkMaxEdge = defaults.ArtworkMaxEdge
	}
	if s.YtDlpPath == "" {
		s.YtDlpPath = defaults.YtDlpPath
	}
	if s.SearchLimit == 0 {
		s.SearchLimit = defaults.SearchLimit
	}
}

// Validate ensures the settings are usable. It runs before any file is
// touched, so template and enum mistakes fail the whole run up front.
func (s *Settings) Validate() error {
	if _, err := s.StepList(); err != nil {
		return err
	}
	if _, err := s.Mode(); err != nil {
		return err
	}
	if _, err := template.Parse(s.TitleTemplate); err != nil {
		return errs.Wrap(errs.ErrConfig, "title_template", err)
	}
	if _, err := template.Parse(s.FilenameTemplate); err != nil {
		return errs.Wrap(errs.ErrConfig, "filename_template", err)
	}
	if s.ArtworkMaxEdge < 0 {
		return errs.Wrapf(errs.ErrConfig, "artwork_max_edge must be positive, got %d", s.ArtworkMaxEdge)
	}
	if s.SearchLimit < 0 {
		return errs.Wrapf(errs.ErrConfig, "search_limit must be positive, got %d", s.SearchLimit)
	}
	return nil
}

// StepList parses the configured step names.
func (s *Settings) StepList() ([]Step, error) {
	steps := make([]Step, 0, len(s.Steps))
	for _, name := range s.Steps {
		step, err := ParseStep(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Mode parses the configured deposit layout.
func (s *Settings) Mode() (deposit.Mode, error) {
	return deposit.ParseMode(s.Organize)
}

// InputPath resolves the input directory against the library root.
func (s *Settings) InputPath(root string) string {
	if filepath.IsAbs(s.InputDir) {
		return s.InputDir
	}
	return filepath.Join(root, s.InputDir)
}

// TargetPath resolves the deposit target directory against the library root.
func (s *Settings) TargetPath(root string) string {
	if filepath.IsAbs(s.TargetDir) {
		return s.TargetDir
	}
	return filepath.Join(root, s.TargetDir)
}

// ToResolver builds the tag resolver from the configured templates.
func (s *Settings) ToResolver() (*resolve.Resolver, error) {
	titleTpl, err := template.Parse(s.TitleTemplate)
	if err != nil {
		return nil, errs.Wrap(errs.ErrConfig, "title_template", err)
	}
	filenameTpl, err := template.Parse(s.FilenameTemplate)
	if err != nil {
		return nil, errs.Wrap(errs.ErrConfig, "filename_template", err)
	}
	return resolve.NewResolver(titleTpl, filenameTpl, s.OverrideArtist), nil
}

// ToTagger builds the tag writer from the artwork settings.
func (s *Settings) ToTagger() *audio.Tagger {
	return audio.NewTagger(s.NormalizeArtwork, s.ArtworkMaxEdge)
}
