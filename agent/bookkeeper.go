package agent

import (
	"context"
	"fmt"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	"github.com/Go2Engle/EtsyTrackr/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
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

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs an Etsy shop. He is here primarily to understand how his shop
			is doing: sales, fees, expenses and profit.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of reading the shop's books.
func NewBookkeeper(store *etsy.Store) *Expert {
	lib := []Function{dashboardFunc(store), salesFunc(store), expensesFunc(store)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the shop's books:
		imported Etsy statements, recorded expenses, and the dashboard figures computed
		from them (sales, fees, taxes, net income, profit).`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of the user's Etsy shop.
				You know how to use the Tools to extract relevant figures from the books.
				You are part of a team of experts; yours is everything recorded in the shop's
				books. Pardon their approximative language and figure out what they meant.

				Use the available tools to answer questions about
				  - the dashboard figures (sales, fees, net income, profit)
				  - individual orders and their fees
				  - recorded expenses
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// monthProperty documents the optional month argument shared by the tools.
var monthProperty = &genai.Schema{
	Type:        genai.TypeString,
	Description: `The calendar month to report on, formatted "YYYY-MM". All recorded data is the default.`,
}

// parseRange interprets the optional month argument.
func parseRange(args map[string]any) (date.Range, error) {
	imonth, ok := args["month"]
	if !ok {
		return date.Range{}, nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return date.Range{}, fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}
	d, err := date.Parse(smonth + "-01")
	if err != nil {
		return date.Range{}, fmt.Errorf("argument 'month' must be formatted YYYY-MM, got %q", smonth)
	}
	return date.NewRange(d, date.Monthly), nil
}

// markdownTool wraps a store read into a Func returning markdown.
func markdownTool(name, description string, render func(rng date.Range) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"month": monthProperty},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			rng, err := parseRange(args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			output, err := render(rng)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = output
			return fresp
		},
	}
}

func dashboardFunc(store *etsy.Store) *Func {
	return markdownTool("Dashboard",
		`Dashboard returns the shop's aggregate figures: total sales, order count,
		average order value, fees by category, net income, expenses and profit.`,
		func(rng date.Range) (string, error) {
			report, err := store.Report(rng)
			if err != nil {
				return "", err
			}
			return renderer.DashboardMarkdown(report), nil
		})
}

func salesFunc(store *etsy.Store) *Func {
	return markdownTool("Sales",
		`Sales lists the consolidated statement records: one line per order,
		listing fee or shipping label, with sale amount, fees and net.`,
		func(rng date.Range) (string, error) {
			records, err := store.Summary(rng)
			if err != nil {
				return "", err
			}
			return renderer.SalesMarkdown(rng, records), nil
		})
}

func expensesFunc(store *etsy.Store) *Func {
	return markdownTool("Expenses",
		`Expenses lists the shop costs recorded by hand, with date, description,
		category and amount.`,
		func(rng date.Range) (string, error) {
			expenses, err := store.Expenses(rng)
			if err != nil {
				return "", err
			}
			return renderer.ExpensesMarkdown(rng, expenses), nil
		})
}
