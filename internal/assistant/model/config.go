package model

// ================ Config ================

// ClassifierModelConfig configures the intent classification model.
// Temperature defaults to 0 so the same message always classifies the same way.
type ClassifierModelConfig struct {
	Model       string  `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"CLASSIFIER_MAX_TOKENS" default:"100"`
	Temperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" default:"0"`
}

// ChatModelConfig configures the model used for parameter extraction and the
// location/general knowledge agents.
type ChatModelConfig struct {
	Model       string  `envconfig:"CHAT_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.7"`
}

type SessionConfig struct {
	TTL string `envconfig:"SESSION_TTL" default:"1h"`
}
