package helpers

type Helpers struct {
	Clipboard *Clipboard
	Config    *ConfigManager
}

func NewHelpers(configPath string) (*Helpers, error) {
	configHelper, err := NewConfigManager(configPath)
	if err != nil {
		return nil, err
	}

	return &Helpers{
		Clipboard: NewClipboard(),
		Config:    configHelper,
	}, nil
}
