package agent

import (
	"context"
	"fmt"

	"github.com/xcoulter/actions"
	"github.com/xcoulter/actions/docs"
	"github.com/xcoulter/actions/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	tb := make(Toolbox, 0, len(experts))
	for _, e := range experts {
		tb = append(tb, e)
	}
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Tools:     tb,
		Instruction: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user wants to understand the monthly figures of his actions report:
			gains and losses, impairments, and ending balances per asset and inventory.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`,
	}
}

// NewAnalyst returns the expert in charge of the loaded actions report. Its
// tools compute monthly summaries and list the report's domains, so its
// answers stay grounded in the actual figures.
func NewAnalyst(ds *actions.Dataset, currency string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has the user's actions report loaded and
		can compute monthly gain/loss and balance summaries from it.
		Ask the Analyst whenever a question needs actual figures from the report.`,
		ModelName: model,
		Tools:     Toolbox{newMonthlySummary(ds, currency), newDomains(ds)},
		Instruction: `
			You are an analyst in charge of the user's actions report.
			You know how to use the Tools to compute the monthly summaries the user asks about.
			Never make a figure up: every number in your answers comes from a tool call.

			Use the available tools to get
			  - the months, assets and inventories present in the report
			  - the monthly summary for a given month, optionally narrowed to one asset or inventory
		`,
	}
}

// tool implements Tool from a declaration and a closure.
type tool struct {
	decl *genai.FunctionDeclaration
	call func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (t *tool) Declaration() *genai.FunctionDeclaration { return t.decl }
func (t *tool) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return t.call(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newMonthlySummary(ds *actions.Dataset, currency string) *tool {
	return &tool{
		decl: &genai.FunctionDeclaration{
			Name: "MonthlySummary",
			Description: `MonthlySummary computes the summary of the actions report for one calendar month:
			the sum of gains and losses and the ending balance per asset and inventory, plus the totals.

			` + must(docs.Topic("reporting")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to report on, formatted YYYY-MM.",
					},
					"asset": {
						Type:        genai.TypeString,
						Description: "Narrow the report to one asset. All assets by default.",
					},
					"inventory": {
						Type:        genai.TypeString,
						Description: "Narrow the report to one inventory. All inventories by default.",
					},
				},
				Required: []string{"month"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary with a totals table and a per asset and inventory table.",
			},
		},
		call: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sel, err := parseSelection(args)
			if err != nil {
				return errResponse(id, "MonthlySummary", err)
			}
			report := ds.NewReport(sel)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "MonthlySummary",
				Response: map[string]any{
					"output": renderer.ReportMarkdown(report, currency),
				},
			}
		},
	}
}

func newDomains(ds *actions.Dataset) *tool {
	return &tool{
		decl: &genai.FunctionDeclaration{
			Name:        "Domains",
			Description: `Domains lists the months, assets and inventories present in the actions report.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of the report's months, assets and inventories.",
			},
		},
		call: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Domains",
				Response: map[string]any{
					"output": renderer.DomainsMarkdown(ds),
				},
			}
		},
	}
}

func parseSelection(args map[string]any) (actions.Selection, error) {
	smonth, ok := args["month"].(string)
	if !ok {
		return actions.Selection{}, fmt.Errorf("argument 'month' is not a string as expected but %T", args["month"])
	}
	month, err := actions.ParseMonth(smonth)
	if err != nil {
		return actions.Selection{}, fmt.Errorf("argument 'month' must be a valid YYYY-MM month, got %q", smonth)
	}

	sel := actions.NewSelection(month)
	if asset, ok := args["asset"].(string); ok && asset != "" {
		sel.Asset = asset
	}
	if inventory, ok := args["inventory"].(string); ok && inventory != "" {
		sel.Inventory = inventory
	}
	return sel, nil
}
