package cli

import (
	"context"
	"os"
)

// ListRequests prints the seller verification queue.
func (a *App) ListRequests(ctx context.Context) error {
	reqs, err := a.sellers.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "error listing requests", "error", err)
		return err
	}
	for _, r := range reqs {
		printlnFn(formatRequest(r))
	}
	return nil
}

// SubmitRequest prompts for a name and email and files a pending seller
// verification request.
func (a *App) SubmitRequest(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Seller name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Seller email", os.Stdout)
	if err != nil {
		return err
	}

	req, err := a.sellers.Submit(ctx, name, email)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Request filed: " + req.ID)
	return nil
}

// Approve prompts for a request id and marks the request approved.
func (a *App) Approve(ctx context.Context) error {
	return a.review(ctx, a.sellers.Approve, "Request approved.")
}

// Reject prompts for a request id and marks the request rejected.
func (a *App) Reject(ctx context.Context) error {
	return a.review(ctx, a.sellers.Reject, "Request rejected.")
}

func (a *App) review(ctx context.Context, decide func(context.Context, string) error, done string) error {
	id, err := getSimpleText(a.reader, "Request id", os.Stdout)
	if err != nil {
		return err
	}

	if err := decide(ctx, id); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn(done)
	return nil
}

// SearchSellers prompts for a term and prints matching approved sellers.
// Pending and rejected requests never match.
func (a *App) SearchSellers(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search sellers by email or name", os.Stdout)
	if err != nil {
		return err
	}

	reqs, err := a.sellers.Search(ctx, term)
	if err != nil {
		a.logger.Error(ctx, "error searching sellers", "error", err)
		return err
	}

	if len(reqs) == 0 {
		printlnFn("No matching sellers.")
		return nil
	}
	for _, r := range reqs {
		printlnFn(formatRequest(r))
	}
	return nil
}
