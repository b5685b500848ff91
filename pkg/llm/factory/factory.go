package factory

import (
	"fmt"

	"astro-observer/pkg/llm"
	"astro-observer/pkg/llm/deepseek"
)

func NewLLMProvider(providerType, baseURL, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "deepseek":
		if baseURL == "" {
			baseURL = "https://api.deepseek.com" // Default
		}
		return deepseek.NewDeepSeekProvider(baseURL, apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
