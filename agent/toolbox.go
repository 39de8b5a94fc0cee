package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// A Tool is a callable the model can invoke by name during a chat. Experts
// are themselves tools: the facilitator asks them through the same mechanism
// as any function.
type Tool interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// A Toolbox is the set of tools one chat may call.
type Toolbox []Tool

// genai returns the toolbox in the form the chat config wants.
func (tb Toolbox) genai() []*genai.Tool {
	if len(tb) == 0 {
		return nil
	}
	decls := make([]*genai.FunctionDeclaration, 0, len(tb))
	for _, t := range tb {
		decls = append(decls, t.Declaration())
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// dispatch routes a function call from the model to the matching tool. An
// unknown name is answered with an error response, not an error: the model
// gets to read it and recover.
func (tb Toolbox) dispatch(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	for _, t := range tb {
		if t.Declaration().Name == call.Name {
			return t.Call(ctx, call.ID, call.Args)
		}
	}
	return &genai.FunctionResponse{
		ID:   call.ID,
		Name: call.Name,
		Response: map[string]any{
			"error": fmt.Sprintf("no tool named %s", call.Name),
		},
	}
}
