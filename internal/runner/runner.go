// Package runner implements the two one-shot API clients: Update sends a
// single record to the update endpoint and Query fetches the records of a
// date range. Each performs exactly one exchange, reports it, and persists a
// successful JSON response to its output path.
package runner

import (
	"context"
	"encoding/json"
	"fmt"

	"evidencija/cli/internal/artifact"
	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/errors"
	"evidencija/cli/internal/record"
	"evidencija/cli/internal/report"
)

// Result describes a finished run.
type Result struct {
	StatusCode int
	// Data is the parsed response body; nil when the body was not JSON.
	Data json.RawMessage
	// SavedTo is the artifact path, empty when nothing was written.
	SavedTo string
}

// UpdateStatuses are the status codes the update endpoint answers on success.
var UpdateStatuses = []int{200, 201, 202}

// Update sends one record to the update endpoint.
type Update struct {
	API       backend.API
	Presenter *report.Presenter
	Output    string
}

// Run builds, sends and reports the update for p. On an accepted status with a
// JSON body the body is written to u.Output.
func (u *Update) Run(ctx context.Context, p record.Payload) (*Result, error) {
	const action = "sending the update"

	req, err := u.API.UpdateRequest(p)
	if err != nil {
		u.Presenter.Failure(err, action)
		return nil, err
	}
	u.Presenter.Sending(req)

	resp, err := u.API.Do(ctx, req)
	if err != nil {
		u.Presenter.Failure(err, action)
		return nil, err
	}

	res := &Result{StatusCode: resp.StatusCode}
	u.Presenter.Status(resp.StatusCode)

	if !resp.StatusIn(UpdateStatuses...) {
		err := errors.Status(resp.StatusCode, resp.Text())
		u.Presenter.Failure(err, action)
		return res, err
	}
	u.Presenter.Success()

	data, err := resp.JSON()
	if err != nil {
		u.Presenter.NotJSON(resp.Text())
		return res, err
	}
	res.Data = data
	u.Presenter.Data("Response data:", data)

	if err := persist(u.Output, data); err != nil {
		u.Presenter.Failure(err, action)
		return res, err
	}
	res.SavedTo = u.Output
	u.Presenter.Saved(u.Output)
	return res, nil
}

// QueryResult extends Result with the record summary.
type QueryResult struct {
	Result
	// Count is the length of the top-level "root" collection.
	Count int
	// Sample is the first record, nil when the collection is empty.
	Sample json.RawMessage
}

// Query fetches the records of a date range.
type Query struct {
	API       backend.API
	Presenter *report.Presenter
	Output    string
}

// Run builds, sends and reports the query for r. On 200 the full body is
// written to q.Output.
func (q *Query) Run(ctx context.Context, r record.DateRange) (*QueryResult, error) {
	const action = "querying records"

	req, err := q.API.QueryRequest(r)
	if err != nil {
		q.Presenter.Failure(err, action)
		return nil, err
	}

	resp, err := q.API.Do(ctx, req)
	if err != nil {
		q.Presenter.Failure(err, action)
		return nil, err
	}

	res := &QueryResult{Result: Result{StatusCode: resp.StatusCode}}
	if resp.StatusCode != 200 {
		q.Presenter.Status(resp.StatusCode)
		err := errors.Status(resp.StatusCode, resp.Text())
		q.Presenter.Failure(err, action)
		return res, err
	}

	data, err := resp.JSON()
	if err != nil {
		q.Presenter.Failure(err, action)
		return res, err
	}
	records, err := rootRecords(data)
	if err != nil {
		q.Presenter.Failure(err, action)
		return res, err
	}
	res.Data = data
	res.Count = len(records)

	q.Presenter.Success()
	q.Presenter.Status(resp.StatusCode)
	q.Presenter.RecordCount(res.Count)

	if err := persist(q.Output, data); err != nil {
		q.Presenter.Failure(err, action)
		return res, err
	}
	res.SavedTo = q.Output
	q.Presenter.Saved(q.Output)

	if len(records) > 0 {
		res.Sample = records[0]
		q.Presenter.Data("Sample data (first record):", res.Sample)
	}
	return res, nil
}

// rootRecords extracts the "root" array. A missing or null root is empty.
func rootRecords(data json.RawMessage) ([]json.RawMessage, error) {
	var envelope struct {
		Root json.RawMessage `json:"root"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(errors.InvalidJSON, "response is not a JSON object", err)
	}
	if len(envelope.Root) == 0 || string(envelope.Root) == "null" {
		return nil, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(envelope.Root, &records); err != nil {
		return nil, errors.Wrap(errors.InvalidJSON, "root is not an array", err)
	}
	return records, nil
}

func persist(path string, data json.RawMessage) error {
	if err := artifact.Write(path, data); err != nil {
		return fmt.Errorf("save response: %w", err)
	}
	return nil
}
