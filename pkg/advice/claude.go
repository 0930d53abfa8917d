package advice

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/utils/anthropic"
	"context"
	"errors"
	"fmt"
)

const adviceMaxTokens = 100

// AskClaudeForAdvice queries the model when the reference table has no row
// for the food type. The model is asked for the string-method schema; its
// reply is normalized like any other advice payload.
func AskClaudeForAdvice(ctx context.Context, client *anthropic.Client, foodType string) (domain.StorageAdvice, error) {
	prompt := fmt.Sprintf(
		`How long does %s typically last, and should it be stored in the fridge or the pantry? Respond with ONLY a JSON object in this exact format: {"days": <number>, "method": "fridge" or "pantry"}`,
		foodType,
	)

	reply, err := client.CompleteText(ctx, prompt, adviceMaxTokens)
	if err != nil {
		return domain.StorageAdvice{}, err
	}

	raw := anthropic.ExtractJSON(reply)
	if raw == "" {
		return domain.StorageAdvice{}, errors.New("no JSON object in model reply")
	}

	return NormalizeAdvice(foodType, []byte(raw), domain.AdviceSourceClaude)
}
