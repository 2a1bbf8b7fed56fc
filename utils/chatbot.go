package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// AskChatbot sends a prompt to the external language-model API and returns
// its reply text.
func AskChatbot(apiURL, apiKey, prompt string) (string, error) {
	requestBody, _ := json.Marshal(map[string]string{"prompt": prompt})

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatbot API returned status %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var response struct {
		Reply string `json:"reply"`
	}
	json.Unmarshal(body, &response)

	return response.Reply, nil
}
