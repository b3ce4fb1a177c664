package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// maxExtractionInput caps the HTML sent to the model.
const maxExtractionInput = 20000

const jobExtractionPrompt = `
You are a job-posting extraction assistant. Analyze the raw HTML/text of a
job posting and extract structured data.

### INSTRUCTIONS:
1. Ignore navigation menus, footers, "similar jobs" lists and ads.
2. Extract the fields below strictly.
3. Output valid JSON only. Do not wrap the output in markdown code blocks.
4. If a field is missing, use null. Do not guess.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Backend Engineer)",
    "company": "Company name",
    "location": "Job location or 'Remote'",
    "salary_min": 80000 or null,
    "salary_max": 120000 or null,
    "description": "Clean summary of the role, HTML tags removed",
    "requirements": "Required skills and experience as one string",
    "job_type": "Full-time | Part-time | Contract | Commission",
    "category": "IT | Marketing | Finance | Other",
    "is_remote": true or false
}

### RAW CONTENT:
%s
`

// LLMService extracts structured job postings from raw listing pages.
// It is optional: the extract endpoint is only registered when a client
// could be built.
type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client, or returns nil when no API
// key is configured.
func NewLLMService(ctx context.Context, apiKey string) *LLMService {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, job extraction disabled")
		return nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Printf("Failed to create Gemini client, job extraction disabled: %v", err)
		return nil
	}
	return &LLMService{Client: llm}
}

// ExtractJobDetails turns raw posting HTML into the catalog's job JSON.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	if len(rawHTML) > maxExtractionInput {
		rawHTML = rawHTML[:maxExtractionInput]
	}

	prompt := fmt.Sprintf(jobExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}
	return resp, nil
}
