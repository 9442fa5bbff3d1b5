package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
)

// Config holds the question-source configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client is the OpenAI-backed question source. Construct one at process
// start and inject it; it is safe for reuse across requests.
type Client struct {
	api    *openai.Client
	model  string
	tmout  time.Duration
	logger *logger.Logger
}

// ErrNoAPIKey is returned by NewClient when no API key is configured. The
// caller is expected to run without a question source in that case.
var ErrNoAPIKey = errors.New("no API key configured")

var _ Source = (*Client)(nil)

// NewClient builds a Client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}
	tmout := cfg.Timeout
	if tmout == 0 {
		tmout = 30 * time.Second
	}
	return &Client{
		api:    openai.NewClientWithConfig(clientConfig),
		model:  model,
		tmout:  tmout,
		logger: logger.Default().WithPrefix("ai"),
	}, nil
}

// questionSchema describes one generated question for function calling.
var questionSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"type": {
			Type:        jsonschema.String,
			Enum:        []string{models.QuestionTypeMultipleChoice, models.QuestionTypeFillBlank},
			Description: "question type",
		},
		"question": {Type: jsonschema.String, Description: "question text"},
		"hint":     {Type: jsonschema.String, Description: "optional hint"},
		"options": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "exactly 4 options, multiple choice only",
		},
		"answer":      {Type: jsonschema.String, Description: "correct answer"},
		"explanation": {Type: jsonschema.String, Description: "detailed explanation"},
		"word":        {Type: jsonschema.String, Description: "core vocabulary word"},
		"difficulty": {
			Type:        jsonschema.Integer,
			Description: "difficulty level 1-10",
		},
	},
	Required: []string{"type", "question", "answer", "explanation", "word", "difficulty"},
}

func (c *Client) GenerateQuestions(ctx context.Context, content string, cfg GenerationConfig, count int) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("ai")
	log.Debug("generating %d questions: language=%s, level=%d", count, cfg.TargetLanguage, cfg.VocabularyLevel)

	ctx, cancel := context.WithTimeout(ctx, c.tmout)
	defer cancel()

	tools := []openai.Tool{{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "create_questions",
			Description: fmt.Sprintf("Create %d %s practice questions from the article", count, cfg.TargetLanguage),
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"questions": {
						Type:  jsonschema.Array,
						Items: &questionSchema,
					},
				},
				Required: []string{"questions"},
			},
		},
	}}

	prompt := fmt.Sprintf(`Create %d practice questions for a learner at vocabulary level %d/10 from the article below.

Article:
%s

Learning goal: %s

Requirements:
1. Mix multiple-choice and fill-in-the-blank questions.
2. Pick 3-5 core vocabulary words from the article.
3. Every question needs a detailed explanation.
4. Keep difficulty appropriate for level %d.

Call create_questions with the result.`, count, cfg.VocabularyLevel, content, cfg.LearningGoal, cfg.VocabularyLevel)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf("You are an expert %s language teacher.", cfg.TargetLanguage)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Tools: tools,
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: "create_questions"},
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.Warn("question generation failed: %v", err)
		return nil, err
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, errors.New("no tool call in generation response")
	}

	var payload struct {
		Questions []models.Question `json:"questions"`
	}
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		log.Warn("malformed generation payload: %v", err)
		return nil, err
	}
	log.Debug("generated %d questions", len(payload.Questions))
	return payload.Questions, nil
}

func (c *Client) GenerateReviewQuestions(ctx context.Context, progress models.WordProgress, cfg GenerationConfig) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("ai")
	log.Debug("generating review questions: word=%s", progress.Word)

	ctx, cancel := context.WithTimeout(ctx, c.tmout)
	defer cancel()

	prompt := fmt.Sprintf(`Create 1-2 review questions for the word %q.

Learner:
- Vocabulary level: %d/10
- Mastery of this word: %.0f%%
- Practiced %d times, %d correct

Requirements:
1. The questions must help the learner recall and consolidate this word.
2. Use multiple_choice or fill_blank.
3. Make the questions easier when mastery is low.
4. Include a short explanation.

Reply with a JSON array of objects with fields: type, question, hint, options (multiple choice only, exactly 4), answer, explanation, word (set to %q), difficulty.`,
		progress.Word, cfg.VocabularyLevel, progress.MasteryLevel*100,
		progress.TotalAttempts, progress.CorrectAttempts, progress.Word)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a professional language teacher who designs review exercises."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		log.Warn("review generation failed for %q: %v", progress.Word, err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty review generation response")
	}

	var questions []models.Question
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		log.Warn("malformed review payload for %q: %v", progress.Word, err)
		return nil, err
	}
	return questions, nil
}

func (c *Client) JudgeAnswer(ctx context.Context, q models.Question, userAnswer string) (bool, string) {
	log := logger.FromContext(ctx).WithPrefix("ai")

	ctx, cancel := context.WithTimeout(ctx, c.tmout)
	defer cancel()

	prompt := fmt.Sprintf(`Judge whether this answer is correct:

Question: %s
Correct answer: %s
Learner's answer: %s

Accept spelling slips and synonyms when the meaning matches. If wrong, add a
short explanation.

Reply with JSON: {"is_correct": true/false, "explanation": "..."}`,
		q.Question, q.Answer, userAnswer)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a professional language teacher."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		log.Warn("answer judgment failed, falling back to exact match: %v", err)
		return exactMatch(q.Answer, userAnswer), ""
	}
	if len(resp.Choices) == 0 {
		return exactMatch(q.Answer, userAnswer), ""
	}

	var verdict struct {
		IsCorrect   bool   `json:"is_correct"`
		Explanation string `json:"explanation"`
	}
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		log.Warn("malformed judgment payload, falling back to exact match: %v", err)
		return exactMatch(q.Answer, userAnswer), ""
	}
	return verdict.IsCorrect, verdict.Explanation
}

func (c *Client) ExplainAnswer(ctx context.Context, req ExplanationRequest) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("ai")
	log.Debug("explaining answer: word=%s", req.Word)

	ctx, cancel := context.WithTimeout(ctx, c.tmout)
	defer cancel()

	prompt := fmt.Sprintf(`Provide a detailed teaching explanation for this question:

Question: %s
Question type: %s
Core word: %s
Correct answer: %s
Learner's answer: %s

Cover: why the correct answer is right, what went wrong in the learner's
answer (or reinforce it when right), the core word %q in depth, a memory tip,
and one or two related expressions. Keep the tone encouraging and concise.`,
		req.Question, req.QuestionType, req.Word, req.CorrectAnswer, req.UserAnswer, req.Word)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a patient language teacher who explains concepts simply."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		log.Warn("explanation failed: %v", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty explanation response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func exactMatch(answer, userAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(userAnswer))
}

// stripCodeFence unwraps a ```json ... ``` (or plain ```) fenced reply.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
