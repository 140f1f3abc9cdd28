package reminders

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"batched/internal/shopping"
)

// ListName is the reminders list shopping items are exported into.
const ListName = "Batched Shopping List"

// chunkSize bounds a single export call so one oversized list cannot sink the
// whole batch.
const chunkSize = 50

// Client talks to the external reminders service.
type Client struct {
	rest *resty.Client
}

// NewClient creates a reminders client for the service at baseURL.
func NewClient(baseURL string) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	return &Client{rest: rest}
}

// Reminder is one exported list item.
type Reminder struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

type exportRequest struct {
	List      string     `json:"list"`
	Reminders []Reminder `json:"reminders"`
}

// FormatTitle renders a consolidated ingredient the way it appears in the
// reminders list: "Onion (Red) (2 pieces)".
func FormatTitle(ing shopping.ConsolidatedIngredient) string {
	displayName := ing.Ingredient.DisplayName
	if ing.Note != "" {
		displayName = fmt.Sprintf("%s (%s)", displayName, ing.Note)
	}
	quantity := strconv.FormatFloat(ing.TotalQuantity, 'f', -1, 64)
	unit := shopping.PluralizeUnit(ing.TotalQuantity, string(ing.Unit))
	return fmt.Sprintf("%s (%s %s)", displayName, quantity, unit)
}

// FormatNotes lists the recipes an item came from.
func FormatNotes(ing shopping.ConsolidatedIngredient) string {
	return "For: " + strings.Join(ing.FromRecipes, ", ")
}

// Export sends the shopping list to the reminders service, skipping items the
// user already has and batching in fixed-size chunks.
func (c *Client) Export(ctx context.Context, ingredients []shopping.ConsolidatedIngredient) error {
	var reminders []Reminder
	for _, ing := range ingredients {
		if ing.AlreadyHave {
			continue
		}
		reminders = append(reminders, Reminder{
			Title: FormatTitle(ing),
			Notes: FormatNotes(ing),
		})
	}

	for start := 0; start < len(reminders); start += chunkSize {
		end := start + chunkSize
		if end > len(reminders) {
			end = len(reminders)
		}
		if err := c.send(ctx, reminders[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, chunk []Reminder) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(exportRequest{List: ListName, Reminders: chunk}).
		Post("/reminders")
	if err != nil {
		return fmt.Errorf("failed to send reminders: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("reminders service returned status %d", resp.StatusCode())
	}
	return nil
}
