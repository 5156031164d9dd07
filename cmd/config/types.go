package config

// Flags holds the root command flags
type Flags struct {
	Webhook string
	Text    string
	File    string
	Config  string
	Verbose bool
}
