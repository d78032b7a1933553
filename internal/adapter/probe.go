// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
)

// ProbeReport is the verdict for one scenario.
type ProbeReport struct {
	Name string
	Want int
	Got  int
	// Err is set when no response was received; Got is then zero.
	Err error
}

// Passed reports whether the server answered with the expected status.
func (r ProbeReport) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

type scenario struct {
	name string
	want int
	call func(ctx context.Context, c ContractClient, token string) (Result, error)
}

var (
	contactFields = map[string]string{"name": "Jane", "email": "jane@example.com", "phone": "555-0100"}
	partialFields = map[string]string{"name": "Jane"}
)

// scenarios covers every endpoint with its failure and success variants, plus
// an unrouted path. token is the secret the server is expected to accept.
var scenarios = []scenario{
	{"greeting", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.Greeting(ctx)
	}},
	{"json greeting", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.JSONGreeting(ctx)
	}},
	{"raw headers", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.RawHeaders(ctx)
	}},
	{"headers", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.Headers(ctx)
	}},
	{"contact", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.SubmitContact(ctx, contactFields)
	}},
	{"contact missing fields", http.StatusBadRequest, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.SubmitContact(ctx, partialFields)
	}},
	{"contact json", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.SubmitContactJSON(ctx, contactFields)
	}},
	{"contact json missing fields", http.StatusBadRequest, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.SubmitContactJSON(ctx, partialFields)
	}},
	{"create account", http.StatusCreated, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.CreateAccount(ctx, partialFields)
	}},
	{"create account without name", http.StatusBadRequest, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.CreateAccount(ctx, map[string]string{})
	}},
	{"login without token", http.StatusBadRequest, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.Login(ctx, "")
	}},
	{"login with wrong token", http.StatusUnauthorized, func(ctx context.Context, c ContractClient, token string) (Result, error) {
		return c.Login(ctx, token+"-wrong")
	}},
	{"login", http.StatusOK, func(ctx context.Context, c ContractClient, token string) (Result, error) {
		return c.Login(ctx, token)
	}},
	{"create post", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.CreatePost(ctx, "1", map[string]string{"title": "First"})
	}},
	{"create post without title", http.StatusBadRequest, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.CreatePost(ctx, "1", map[string]string{})
	}},
	{"delete post", http.StatusOK, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.DeletePost(ctx, "1")
	}},
	{"unrouted path", http.StatusNotFound, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.Do(ctx, http.MethodGet, "/unrouted")
	}},
	{"wrong method", http.StatusNotFound, func(ctx context.Context, c ContractClient, _ string) (Result, error) {
		return c.Do(ctx, http.MethodGet, "/login")
	}},
}

// Probe runs every scenario in order and reports each status. It stops early
// only when ctx is done; the remaining scenarios are then reported with the
// context error.
func Probe(ctx context.Context, client ContractClient, token string) []ProbeReport {
	reports := make([]ProbeReport, 0, len(scenarios))

	for _, sc := range scenarios {
		report := ProbeReport{Name: sc.name, Want: sc.want}

		if err := ctx.Err(); err != nil {
			report.Err = err
			reports = append(reports, report)
			continue
		}

		result, err := sc.call(ctx, client, token)
		if err != nil {
			report.Err = err
		} else {
			report.Got = result.Status
		}
		reports = append(reports, report)
	}

	return reports
}

// Failed returns the reports that did not pass.
func Failed(reports []ProbeReport) []ProbeReport {
	var failed []ProbeReport
	for _, r := range reports {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}
