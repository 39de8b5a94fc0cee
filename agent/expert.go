package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Expert is one chat with its own role and toolbox. The facilitator's toolbox
// is the other experts; a domain expert's toolbox computes real figures.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Instruction string
	Tools       Toolbox

	chat *genai.Chat
}

// Start opens the expert's Gemini chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: e.Tools.genai(),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: e.Instruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, e.ModelName, config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert's chat, resolving any function call through
// the toolbox, until the model produces text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	first := resp.Candidates[0].Content.Parts[0]
	if first.FunctionCall == nil {
		return resp.Candidates[0].Content, nil
	}
	if len(e.Tools) == 0 {
		return nil, fmt.Errorf("expert %s has no tools but the model called %s", e.Name, first.FunctionCall.Name)
	}
	answer := e.Tools.dispatch(ctx, first.FunctionCall)
	return e.Ask(ctx, &genai.Part{FunctionResponse: answer})
}

// Declaration makes the expert callable as a tool: one "question" argument,
// one text answer.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The expert's answer.",
		},
	}
}

// Call asks the expert the "question" argument of a function call.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out := &genai.FunctionResponse{
		ID:       id,
		Name:     e.Name,
		Response: map[string]any{},
	}

	question, ok := args["question"].(string)
	if !ok {
		out.Response["error"] = fmt.Sprintf("argument 'question' is %T, expected a string", args["question"])
		return out
	}

	answer, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		out.Response["error"] = fmt.Sprintf("asking expert %s failed: %v", e.Name, err)
		return out
	}

	log.Printf("expert %q answered %q", e.Name, question)
	out.Response["output"] = answer.Parts[0].Text
	return out
}
