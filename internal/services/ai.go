package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rallypoint/internal/domain"
)

type aiService struct {
	generator domain.TextGenerator
	userRepo  domain.UserRepository
	eventRepo domain.EventRepository
}

// NewAIService creates an AIService over the given generator and repositories.
func NewAIService(generator domain.TextGenerator, userRepo domain.UserRepository, eventRepo domain.EventRepository) domain.AIService {
	return &aiService{generator: generator, userRepo: userRepo, eventRepo: eventRepo}
}

// GenerateDescription produces an event description. Generator failures
// propagate: the admin asked for text and should see the error.
func (s *aiService) GenerateDescription(ctx context.Context, title string, keywords []string) (string, error) {
	var b strings.Builder
	b.WriteString("Write a short, friendly description (2-3 sentences) for a volunteer event titled ")
	fmt.Fprintf(&b, "%q.", title)
	if len(keywords) > 0 {
		fmt.Fprintf(&b, " Mention: %s.", strings.Join(keywords, ", "))
	}
	b.WriteString(" Return only the description text.")

	text, err := s.generator.Generate(ctx, b.String())
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ClassifyEvent tags an event with skill categories. Failures degrade to an
// empty list rather than an error.
func (s *aiService) ClassifyEvent(ctx context.Context, title, description string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Classify the volunteer event below into skill tags (e.g. \"gardening\", \"teaching\", \"cooking\").\n"+
			"Title: %s\nDescription: %s\n"+
			"Respond with a JSON array of lowercase tag strings and nothing else.",
		title, description,
	)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[AI] classify failed, returning empty tags: %v", err)
		return []string{}, nil
	}
	tags, err := parseStringList(text)
	if err != nil {
		log.Printf("[AI] classify returned unparseable output, returning empty tags: %v", err)
		return []string{}, nil
	}
	return tags, nil
}

// RecommendEvents picks upcoming events that match the volunteer's skills.
// Failures degrade to an empty list rather than an error.
func (s *aiService) RecommendEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	events, err := s.eventRepo.ListUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return []*domain.Event{}, nil
	}

	var b strings.Builder
	b.WriteString("A volunteer has these skills: ")
	if len(user.Skills) > 0 {
		b.WriteString(strings.Join(user.Skills, ", "))
	} else {
		b.WriteString("(none listed)")
	}
	b.WriteString(".\nUpcoming events:\n")
	byID := make(map[string]*domain.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
		fmt.Fprintf(&b, "- id=%s title=%q description=%q\n", ev.ID, ev.Title, ev.Description)
	}
	b.WriteString("Respond with a JSON array of the ids of the events that best match the volunteer, best first, and nothing else.")

	text, err := s.generator.Generate(ctx, b.String())
	if err != nil {
		log.Printf("[AI] recommend failed, returning empty list: %v", err)
		return []*domain.Event{}, nil
	}
	ids, err := parseStringList(text)
	if err != nil {
		log.Printf("[AI] recommend returned unparseable output, returning empty list: %v", err)
		return []*domain.Event{}, nil
	}

	recommended := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := byID[id]; ok {
			recommended = append(recommended, ev)
		}
	}
	return recommended, nil
}

// parseStringList extracts a JSON string array from model output, tolerating
// surrounding prose or code fences.
func parseStringList(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in output")
	}
	var list []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &list); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	return list, nil
}
