package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TestRank-hq/testrank/internal/priority"
	"github.com/TestRank-hq/testrank/internal/quality"
	"github.com/TestRank-hq/testrank/pkg/model"
)

// enhanceRequest is the single-case request body.
type enhanceRequest struct {
	TestCase             *model.TestCase `json:"test_case"`
	Requirement          string          `json:"requirement"`
	TestType             string          `json:"test_type"`
	LLMSuggestedPriority string          `json:"llm_suggested_priority"`
}

func (s *Server) enhanceOne(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := priority.ValidateCase(req.TestCase); err != nil {
		writeValidationError(w, err)
		return
	}

	// The case's own priority serves as the hint when no explicit
	// suggestion accompanies the request.
	hint := req.LLMSuggestedPriority
	if hint == "" {
		hint = string(req.TestCase.Priority)
	}

	result := s.enhancer.Enhance(*req.TestCase, req.Requirement, req.TestType, hint)
	writeJSON(w, http.StatusOK, result)
}

// bulkEnhanceRequest is the bulk request body.
type bulkEnhanceRequest struct {
	TestCases   []model.TestCase `json:"test_cases"`
	Requirement string           `json:"requirement"`
	TestType    string           `json:"test_type"`
	Persist     bool             `json:"persist,omitempty"`
}

type bulkEnhanceResponse struct {
	TestCases []model.TestCase `json:"test_cases"`
	RunID     string           `json:"run_id,omitempty"`
}

func (s *Server) enhanceBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkEnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := priority.ValidateCases(req.TestCases); err != nil {
		writeValidationError(w, err)
		return
	}

	enhanced := s.enhancer.BulkEnhance(r.Context(), req.TestCases, req.Requirement, req.TestType)

	resp := bulkEnhanceResponse{TestCases: enhanced}
	if req.Persist && s.store != nil {
		run, err := s.store.SaveRun(r.Context(), req.Requirement, req.TestType, enhanced)
		if err != nil {
			log.Error().Err(err).Msg("failed to persist enhancement run")
		} else {
			resp.RunID = run.ID.String()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// qualityRequest is the quality scoring request body.
type qualityRequest struct {
	TestCases    []model.TestCase `json:"test_cases"`
	TestCategory string           `json:"test_category"`
	TestType     string           `json:"test_type"`
}

func (s *Server) scoreQuality(w http.ResponseWriter, r *http.Request) {
	var req qualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := priority.ValidateCases(req.TestCases); err != nil {
		writeValidationError(w, err)
		return
	}

	if req.TestCategory == "" {
		req.TestCategory = "functional"
	}
	report := quality.Score(req.TestCases, req.TestCategory, req.TestType)
	writeJSON(w, http.StatusOK, report)
}

// testTypeInfo is one profile entry in the /types listing.
type testTypeInfo struct {
	TestType string           `json:"test_type"`
	Profile  priority.Profile `json:"profile"`
}

func (s *Server) listTestTypes(w http.ResponseWriter, r *http.Request) {
	profiles := s.enhancer.Profiles()

	out := make([]testTypeInfo, 0, len(profiles))
	for _, typ := range priority.SortedTypes(profiles) {
		out = append(out, testTypeInfo{TestType: string(typ), Profile: profiles[typ]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "run persistence is disabled")
		return
	}

	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	results, err := s.store.GetResults(r.Context(), runID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load results")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run":     run,
		"results": results,
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *priority.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Error(),
			"field": verr.Field,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
