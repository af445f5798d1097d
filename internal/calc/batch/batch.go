// Package batch runs many vessel calculations at once: JSON batches, xlsx
// imports of vessel rows and xlsx capacity tables.
package batch

import (
	"context"
	"errors"
	"fmt"

	"Vesselcalc/internal/calc/vessel"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of vessels calculated concurrently.
const DefaultLimit = 8

// MaxItems bounds a single batch.
const MaxItems = 500

var ErrEmpty = errors.New("no items")

type Input struct {
	Items []vessel.Input `json:"items"`
}

// Item is the outcome of one batch entry. Exactly one of Result and Error
// is set.
type Item struct {
	Index  int            `json:"index"`
	Result *vessel.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Result struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Calculate evaluates every item with at most limit calculations in flight.
// A failing item is reported in its slot and does not stop the batch; only
// cancellation of ctx does.
func Calculate(ctx context.Context, in Input, limit int) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("batch of %d items exceeds %d", len(in.Items), MaxItems)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	items := make([]Item, len(in.Items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range in.Items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = Item{Index: i}
			res, err := vessel.Calculate(item)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Result = &res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	out := Result{Count: len(items), Items: items}
	for _, it := range items {
		if it.Error != "" {
			out.Failed++
		}
	}
	return out, nil
}
