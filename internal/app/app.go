package app

// App is the shared context commands run against.
type App struct {
	Config *Config
}

// New builds the app context from cfg.
func New(cfg *Config) *App {
	return &App{Config: cfg}
}
