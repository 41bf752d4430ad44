package config

// Plannerfile represents the structure of the planner.yaml configuration file.
type Plannerfile struct {
	Version      string          `yaml:"version"`
	Title        string          `yaml:"title"`
	Placeholders PlaceholdersDTO `yaml:"placeholders"`
	FadeDuration string          `yaml:"fadeDuration"`
	OutputMode   string          `yaml:"outputMode"`
}

// PlaceholdersDTO holds the hint texts of the two draft inputs.
type PlaceholdersDTO struct {
	Text string `yaml:"text"`
	Time string `yaml:"time"`
}
