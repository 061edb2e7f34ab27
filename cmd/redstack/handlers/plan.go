package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/imamik/redstack/internal/compose"
	"github.com/imamik/redstack/internal/export"
	"github.com/imamik/redstack/internal/platform/inventory"
	"github.com/imamik/redstack/internal/resource"
)

// planSummary is the condensed view printed by the plan command.
type planSummary struct {
	Stack        string         `json:"stack"`
	PlanID       string         `json:"planId"`
	Digest       string         `json:"digest"`
	Network      string         `json:"network"`
	LoadBalancer string         `json:"loadBalancer"`
	Imported     []string       `json:"imported"`
	Endpoints    []string       `json:"endpoints"`
	Warnings     []string       `json:"warnings"`
	Kinds        []kindCount    `json:"kinds"`
	Order        []string       `json:"order"`
	Total        int            `json:"total"`
	Provenance   map[string]int `json:"provenance"`
}

type kindCount struct {
	Kind  resource.Kind `json:"kind"`
	Count int           `json:"count"`
}

// Plan composes the plan and prints a summary. With inventoryPath set,
// every imported reference is checked against the inventory first.
func Plan(ctx context.Context, opts Options, inventoryPath string, jsonOutput bool) error {
	var extra []compose.Option
	if inventoryPath != "" {
		inv, err := inventory.LoadFile(inventoryPath)
		if err != nil {
			return err
		}
		extra = append(extra, compose.WithLocator(inv))
	}

	plan, err := composePlan(ctx, opts, extra...)
	if err != nil {
		return err
	}
	doc, err := export.Export(plan.Stack, plan.Graph)
	if err != nil {
		return err
	}

	summary := summarize(plan, doc)
	if jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprint(stdout, renderPlanSummary(summary, isInteractiveTTY()))
	return nil
}

func summarize(plan *compose.Plan, doc *export.Document) *planSummary {
	s := &planSummary{
		Stack:        doc.Stack,
		PlanID:       doc.PlanID,
		Digest:       doc.Digest,
		Network:      plan.Network,
		LoadBalancer: plan.Balancer,
		Imported:     nonNil(plan.Imported),
		Endpoints:    nonNil(plan.Endpoints),
		Warnings:     nonNil(plan.Warnings),
		Total:        len(doc.Resources),
		Provenance:   map[string]int{},
	}

	counts := map[resource.Kind]int{}
	for _, r := range doc.Resources {
		counts[r.Kind]++
		s.Provenance[string(r.Provenance)]++
		s.Order = append(s.Order, r.Name)
	}
	for kind, n := range counts {
		s.Kinds = append(s.Kinds, kindCount{Kind: kind, Count: n})
	}
	sort.Slice(s.Kinds, func(i, j int) bool { return s.Kinds[i].Kind < s.Kinds[j].Kind })
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
