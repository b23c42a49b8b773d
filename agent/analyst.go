package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/unicorn"
	"github.com/etnz/unicorn/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the chat in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to explore a snapshot of unicorn companies: privately held startups
			valued at or above one billion dollars. Devise a plan of questions to ask the experts
			and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert in charge of the unicorn snapshot. Its tools
// compute the same statistics the dashboard reports use, over any filtered
// view of the set.
func NewAnalyst(set *unicorn.Set) *Expert {
	lib := []Function{dashboardFunc(set), facetsFunc(set)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of the unicorn company snapshot.
		He can filter the snapshot by industry, country and founding-year range, and compute
		counts, total and average valuations, and the breakdowns by year, country and industry.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a data analyst in charge of a snapshot of unicorn companies.
				You know how to use the Tools to extract relevant figures from the snapshot:
				  - the list of industries and countries it covers
				  - headline metrics and breakdowns for any filtered view
				Answer with figures from the tools, never invent numbers. Valuations are
				expressed in billions of dollars.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// dashboardFunc computes the full dashboard for a filtered view.
func dashboardFunc(set *unicorn.Set) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard computes the analytics of a filtered view of the snapshot:
			company count, total and average valuation in billions of dollars, average founding
			year, valuations by the year companies became unicorns, the country ranking and the
			industry distribution.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"industries": {
						Type:        genai.TypeString,
						Description: "Comma-separated industries to keep. Empty keeps all.",
					},
					"countries": {
						Type:        genai.TypeString,
						Description: "Comma-separated countries to keep. Empty keeps all.",
					},
					"founded": {
						Type:        genai.TypeString,
						Description: `Founding-year range "from:to"; either side can be empty. Empty keeps all.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the filtered view.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filter, err := parseFilter(args)
			if err != nil {
				return errorResponse(id, "Dashboard", err)
			}
			d := unicorn.NewDashboard(set, filter, 0)
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "Dashboard",
				Response: map[string]any{"output": renderer.DashboardMarkdown(d)},
			}
		},
	}
}

// facetsFunc lists the filterable values of the snapshot.
func facetsFunc(set *unicorn.Set) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Facets",
			Description: `Facets lists the exact industry and country names present in the
			snapshot, and the founding-year bounds. Use it to map the user's words to the
			snapshot's vocabulary before filtering.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The industries, countries and founding-year bounds of the snapshot.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			fmt.Fprintf(&b, "Industries: %s\n", strings.Join(set.Industries(), ", "))
			fmt.Fprintf(&b, "Countries: %s\n", strings.Join(set.Countries(), ", "))
			if min, max, ok := set.FoundedRange(); ok {
				fmt.Fprintf(&b, "Founded between %d and %d\n", min, max)
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "Facets",
				Response: map[string]any{"output": b.String()},
			}
		},
	}
}

func parseFilter(args map[string]any) (unicorn.Filter, error) {
	str := func(key string) string {
		if v, ok := args[key].(string); ok {
			return v
		}
		return ""
	}
	list := func(key string) []string {
		var out []string
		for _, v := range strings.Split(str(key), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	founded, err := unicorn.ParseYearRange(str("founded"))
	if err != nil {
		return unicorn.Filter{}, fmt.Errorf("argument 'founded' must be a year range: %w", err)
	}
	return unicorn.Filter{
		Industries: list("industries"),
		Countries:  list("countries"),
		Founded:    founded,
	}, nil
}
