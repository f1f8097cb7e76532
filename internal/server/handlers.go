package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/types"
	"golang.org/x/sync/errgroup"
)

// handleAnalyze extracts a profile from resume text and analyzes it for a
// target role. It accepts either a JSON AnalyzeRequest or a multipart form
// with the document in the "resume" field.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var (
		req types.AnalyzeRequest
		doc *ingestion.Document
		err error
	)
	if isMultipart(r) {
		req, doc, err = s.readResumeUpload(w, r)
	} else {
		err = s.decodeJSON(w, r, &req)
	}
	if err == nil {
		err = checkRequest(&req, req.ResumeText, "ResumeText")
	}
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}

	role := orDefault(req.TargetRole, s.config.DefaultRole)
	level := orDefault(req.ExperienceLevel, s.config.DefaultExperienceLevel)
	profile := s.service.Extract(req.ResumeText)

	var (
		result     types.AnalysisResult
		careerPath *types.CareerPath
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		result = s.service.AnalyzeProfile(ctx, req.ResumeText, &profile, role)
		return nil
	})
	if req.IncludeCareerPath && s.service.AdvisoryEnabled() {
		g.Go(func() error {
			careerPath, _ = s.service.CareerPath(ctx, &profile, role, level)
			return nil
		})
	}
	_ = g.Wait()

	response := map[string]any{
		"success":    true,
		"requestId":  requestID(r.Context()),
		"targetRole": role,
		"profile":    profile,
		"analysis":   result,
	}
	if careerPath != nil {
		response["careerPath"] = careerPath
	}
	if doc != nil {
		response["document"] = doc.Metadata
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// readResumeUpload decodes the uploaded resume document and the optional form fields
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request) (types.AnalyzeRequest, *ingestion.Document, error) {
	var req types.AnalyzeRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return req, nil, &ErrValidation{Field: "resume", Message: "invalid multipart form: " + err.Error()}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, &ErrValidation{Field: "resume", Message: "No file uploaded"}
		}
		return req, nil, fmt.Errorf("failed to read upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, nil, fmt.Errorf("failed to read upload: %w", err)
	}

	doc, err := ingestion.Decode(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		return req, nil, err
	}

	includeCareerPath, _ := strconv.ParseBool(r.FormValue("includeCareerPath"))
	req = types.AnalyzeRequest{
		ResumeText:        doc.Text,
		TargetRole:        r.FormValue("targetRole"),
		ExperienceLevel:   r.FormValue("experienceLevel"),
		IncludeCareerPath: includeCareerPath,
	}
	return req, doc, nil
}

// handleMatch matches resume text against a job description given inline or by URL
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := checkRequest(&req, req.ResumeText, "ResumeText"); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	jobDescription := req.JobDescription
	if strings.TrimSpace(jobDescription) == "" && req.JobURL != "" {
		doc, err := ingestion.IngestFromURL(r.Context(), s.fetcher, req.JobURL)
		if err != nil {
			s.errorFrom(w, r, err)
			return
		}
		jobDescription = doc.Text
	}
	if strings.TrimSpace(jobDescription) == "" {
		s.errorFrom(w, r, &ErrValidation{Field: "JobDescription", Message: "Please provide a job description"})
		return
	}

	_, result := s.service.MatchText(r.Context(), req.ResumeText, jobDescription)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"requestId": requestID(r.Context()),
		"jobMatch": types.JobMatch{
			JobTitle:    orDefault(req.JobTitle, types.DefaultJobTitle),
			Company:     req.Company,
			JobURL:      req.JobURL,
			MatchResult: result,
		},
	})
}

// handleAdvisoryStatus reports whether advisory calls are switched on and configured
func (s *Server) handleAdvisoryStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"ai":      s.service.Status(),
	})
}

// handleCareerPath generates an advisory roadmap toward a target role
func (s *Server) handleCareerPath(w http.ResponseWriter, r *http.Request) {
	if err := s.requireAdvisory(); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	var req types.CareerPathRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := checkRequest(&req, req.ResumeText, "ResumeText"); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	profile := s.service.Extract(req.ResumeText)
	path, ok := s.service.CareerPath(r.Context(), &profile,
		orDefault(req.TargetRole, s.config.DefaultRole),
		orDefault(req.ExperienceLevel, s.config.DefaultExperienceLevel))
	if !ok {
		s.errorFrom(w, r, &ErrAdvisoryUnavailable{Operation: "career path"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"requestId":  requestID(r.Context()),
		"careerPath": path,
	})
}

// handleSuggestions returns rewrite suggestions for one section, defaulting to the whole resume
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if err := s.requireAdvisory(); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	var req types.SuggestionsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := checkRequest(&req, req.Content, "Content"); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	suggestions, ok := s.service.Suggestions(r.Context(), req.Content, req.SectionOrDefault())
	if !ok {
		s.errorFrom(w, r, &ErrAdvisoryUnavailable{Operation: "suggestions"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"requestId":   requestID(r.Context()),
		"suggestions": suggestions,
	})
}

// handleAnalyzeSection is handleSuggestions with a mandatory section
func (s *Server) handleAnalyzeSection(w http.ResponseWriter, r *http.Request) {
	if err := s.requireAdvisory(); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	var req types.SectionAnalysisRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := checkRequest(&req, req.Content, "Content"); err != nil {
		s.errorFrom(w, r, err)
		return
	}

	suggestions, ok := s.service.Suggestions(r.Context(), req.Content, req.Section)
	if !ok {
		s.errorFrom(w, r, &ErrAdvisoryUnavailable{Operation: "section analysis"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"requestId": requestID(r.Context()),
		"analysis":  suggestions,
	})
}

func (s *Server) requireAdvisory() error {
	if s.service.AdvisoryEnabled() {
		return nil
	}
	return &ErrAdvisoryDisabled{Provider: llm.Provider(s.service.Status().Provider)}
}

// decodeJSON reads a size-limited JSON body into v
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	return nil
}

type validatable interface {
	Validate() error
}

// checkRequest runs struct validation and rejects whitespace-only text in field
func checkRequest(req validatable, text, field string) error {
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	if strings.TrimSpace(text) == "" {
		return &ErrValidation{Field: field, Message: "required"}
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
