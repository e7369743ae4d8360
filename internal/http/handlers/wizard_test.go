package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/usecases"
)

type wizardCall struct {
	h *Handlers
	t *testing.T
}

// do runs handler against a wizard route for testAppID and returns the
// status and body.
func (w wizardCall) do(handler echo.HandlerFunc, method, body string, params ...string) (int, string) {
	w.t.Helper()
	params = append([]string{"app", strconv.Itoa(testAppID)}, params...)
	c, rec := newAPIContext(w.t, method, "/api/tenants/acme/applications/10/wizard", body, params...)
	if err := handler(c); err != nil {
		w.t.Fatalf("handler error = %v", err)
	}
	return rec.Code, rec.Body.String()
}

func startWizard(t *testing.T, call wizardCall, body string) wizardResponse {
	t.Helper()
	status, raw := call.do(call.h.HandleWizardStart, http.MethodPost, body)
	if status != http.StatusCreated {
		t.Fatalf("start status = %d, body = %s", status, raw)
	}
	var w wizardResponse
	decodeBody(t, raw, &w)
	return w
}

func answersJSON(tab usecases.Tab) string {
	answers := map[string]string{}
	for _, q := range usecases.QuestionsFor(tab) {
		if q.Required {
			answers[q.Key] = "answered"
		}
	}
	b, _ := json.Marshal(answers)
	return string(b)
}

const (
	fieldsJSON = `{"business_function":"Support","use_case":"Ticket triage","what_it_does":"Routes tickets"}`
	riskJSON   = `{"name":"Prompt injection","owner_id":7,"target_date":"2026-12-31"}`
)

// fillAndAdvance completes every tab up to, but not including, the final
// Next.
func fillAndAdvance(t *testing.T, call wizardCall, id string) {
	t.Helper()
	h := call.h
	if status, body := call.do(h.HandleWizardFields, http.MethodPut, fieldsJSON, "draft", id); status != http.StatusOK {
		t.Fatalf("fields status = %d, body = %s", status, body)
	}
	if status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", id); status != http.StatusOK {
		t.Fatalf("next from usecase = %d, body = %s", status, body)
	}
	if status, body := call.do(h.HandleWizardRiskAdd, http.MethodPost, riskJSON, "draft", id); status != http.StatusCreated {
		t.Fatalf("risk add = %d, body = %s", status, body)
	}
	if status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", id); status != http.StatusOK {
		t.Fatalf("next from risks = %d, body = %s", status, body)
	}
	for _, tab := range usecases.Tabs[2:] {
		if status, body := call.do(h.HandleWizardAnswers, http.MethodPut, answersJSON(tab), "draft", id, "tab", string(tab)); status != http.StatusOK {
			t.Fatalf("answers %s = %d, body = %s", tab, status, body)
		}
		if tab == usecases.TabEnvironmentalImpact {
			break
		}
		if status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", id); status != http.StatusOK {
			t.Fatalf("next from %s = %d, body = %s", tab, status, body)
		}
	}
}

func TestWizardCreateFlow(t *testing.T) {
	h, store, sess := newWizardHandler()
	call := wizardCall{h: h, t: t}

	w := startWizard(t, call, "")
	if w.Mode != usecases.ModeCreate || w.Current != usecases.TabUseCase || len(w.Tabs) != len(usecases.Tabs) {
		t.Fatalf("start = %+v", w)
	}

	fillAndAdvance(t, call, w.ID)

	status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", w.ID)
	if status != http.StatusOK || !strings.Contains(body, `"status":"submitted"`) {
		t.Fatalf("submit = %d, body = %s", status, body)
	}
	if len(store.useCases) != 1 {
		t.Fatalf("use cases stored = %d, want 1", len(store.useCases))
	}
	for _, uc := range store.useCases {
		if len(uc.Risks) != 1 || uc.UseCase != "Ticket triage" {
			t.Fatalf("stored use case = %+v", uc)
		}
	}
	if sess.len() != 0 {
		t.Fatalf("draft kept after submit")
	}
	if status, _ := call.do(h.HandleWizardGet, http.MethodGet, "", "draft", w.ID); status != http.StatusNotFound {
		t.Fatalf("get after submit = %d, want 404", status)
	}
}

func TestWizardNextRejectsInvalidTab(t *testing.T) {
	h, _, _ := newWizardHandler()
	call := wizardCall{h: h, t: t}
	w := startWizard(t, call, "")

	status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", w.ID)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	if !strings.Contains(body, `"use_case"`) {
		t.Fatalf("body missing field errors: %s", body)
	}

	_, raw := call.do(h.HandleWizardGet, http.MethodGet, "", "draft", w.ID)
	var got wizardResponse
	decodeBody(t, raw, &got)
	if got.Current != usecases.TabUseCase {
		t.Fatalf("current = %q after rejected next", got.Current)
	}
}

func TestWizardSubmitFailureKeepsDraft(t *testing.T) {
	h, store, _ := newWizardHandler()
	store.failCreateRisk = errors.New("connection reset")
	call := wizardCall{h: h, t: t}
	w := startWizard(t, call, "")
	fillAndAdvance(t, call, w.ID)

	c, _ := newAPIContext(t, http.MethodPost, "/", "", "app", strconv.Itoa(testAppID), "draft", w.ID)
	if err := h.HandleWizardNext(c); err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("HandleWizardNext() error = %v, want storage failure", err)
	}

	_, raw := call.do(h.HandleWizardGet, http.MethodGet, "", "draft", w.ID)
	var got wizardResponse
	decodeBody(t, raw, &got)
	if got.Current != usecases.TabEnvironmentalImpact || got.TotalRisks != 1 {
		t.Fatalf("draft after failed submit = %+v", got)
	}

	if len(store.useCases) != 0 {
		t.Fatalf("failed submit left %d use cases", len(store.useCases))
	}

	store.failCreateRisk = nil
	if status, body := call.do(h.HandleWizardNext, http.MethodPost, "", "draft", w.ID); status != http.StatusOK {
		t.Fatalf("retry = %d, body = %s", status, body)
	}
}

func TestWizardForwardSkipIsRejected(t *testing.T) {
	h, _, _ := newWizardHandler()
	call := wizardCall{h: h, t: t}
	w := startWizard(t, call, "")

	status, _ := call.do(h.HandleWizardGoTo, http.MethodPost, "", "draft", w.ID, "tab", string(usecases.TabExplainability))
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	status, _ = call.do(h.HandleWizardAnswers, http.MethodPut, `{"x":"y"}`, "draft", w.ID, "tab", "nope")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("unknown tab status = %d, want 422", status)
	}
}

func TestWizardEditLastRiskCannotBeRemoved(t *testing.T) {
	h, store, _ := newWizardHandler()
	store.useCases[1] = usecases.UseCase{
		ID:            1,
		ApplicationID: testAppID,
		Fields:        usecases.Fields{BusinessFunction: "Support", UseCase: "Triage", WhatItDoes: "Routes"},
		Risks:         []usecases.Risk{{ID: 5, Name: "Bias", OwnerID: testOwnerID, TargetDate: "2026-12-31"}},
	}
	store.nextID = 5
	call := wizardCall{h: h, t: t}

	w := startWizard(t, call, `{"use_case_id":1}`)
	if w.Mode != usecases.ModeEdit || w.TotalRisks != 1 {
		t.Fatalf("edit start = %+v", w)
	}
	status, body := call.do(h.HandleWizardRiskRemove, http.MethodDelete, "", "draft", w.ID, "key", "r5")
	if status != http.StatusUnprocessableEntity || !strings.Contains(body, usecases.ErrLastRisk.Error()) {
		t.Fatalf("remove last = %d, body = %s", status, body)
	}
}

func TestWizardDraftIsScopedToApplication(t *testing.T) {
	h, _, _ := newWizardHandler()
	call := wizardCall{h: h, t: t}
	w := startWizard(t, call, "")

	c, rec := newAPIContext(t, http.MethodGet, "/", "", "app", "11", "draft", w.ID)
	if err := h.HandleWizardGet(c); err != nil {
		t.Fatalf("HandleWizardGet() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if status, _ := call.do(h.HandleWizardCancel, http.MethodDelete, "", "draft", w.ID); status != http.StatusNoContent {
		t.Fatalf("cancel status = %d", status)
	}
}
