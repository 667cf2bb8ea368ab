package fakeapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/five82/podium/internal/api"
)

func (s *Server) listAboutUs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	entries := append([]api.AboutUsEntry{}, s.aboutUs...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}

func (s *Server) createAboutUs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeMessage(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.aboutUs) > 0 {
		writeMessage(w, http.StatusConflict, "About Us information already exists")
		return
	}
	entry := api.AboutUsEntry{
		ID:          s.newID(),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		CreatedAt:   s.timestamp(),
	}
	if _, header, err := r.FormFile("image"); err == nil {
		entry.Image, _ = s.uploadURL("aboutus", header.Filename)
	}
	s.aboutUs = append(s.aboutUs, entry)
	writeJSON(w, http.StatusCreated, map[string]any{"data": entry})
}

func (s *Server) updateAboutUs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeMessage(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.aboutUs {
		if s.aboutUs[i].ID != id {
			continue
		}
		s.aboutUs[i].Title = r.FormValue("title")
		s.aboutUs[i].Description = r.FormValue("description")
		if _, header, err := r.FormFile("image"); err == nil {
			s.aboutUs[i].Image, _ = s.uploadURL("aboutus", header.Filename)
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": s.aboutUs[i]})
		return
	}
	writeMessage(w, http.StatusNotFound, "About Us information not found")
}

func (s *Server) deleteAboutUs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.aboutUs {
		if s.aboutUs[i].ID == id {
			s.aboutUs = append(s.aboutUs[:i], s.aboutUs[i+1:]...)
			writeMessage(w, http.StatusOK, "About Us information deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "About Us information not found")
}

func (s *Server) listSponsors(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]api.Sponsor, 0, len(s.sponsors))
	for _, sp := range s.sponsors {
		out = append(out, sp.Clone())
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createSponsor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeMessage(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	level, ok := api.ParseLevel(r.FormValue("level"))
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid sponsor level")
		return
	}
	files := r.MultipartForm.File["logos"]
	if len(files) == 0 {
		writeMessage(w, http.StatusBadRequest, "at least one logo is required")
		return
	}
	if len(files) > api.MaxLogos {
		writeMessage(w, http.StatusBadRequest, "too many logos")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sponsor := api.Sponsor{
		ID:          s.newID(),
		CompanyName: r.FormValue("companyName"),
		Description: r.FormValue("description"),
		Level:       level,
	}
	for _, fh := range files {
		url, publicID := s.uploadURL("sponsors", fh.Filename)
		sponsor.Logos = append(sponsor.Logos, api.Logo{URL: url, PublicID: publicID})
	}
	s.sponsors = append(s.sponsors, sponsor)
	writeJSON(w, http.StatusCreated, sponsor.Clone())
}

func (s *Server) updateSponsor(w http.ResponseWriter, r *http.Request) {
	var in api.SponsorUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}
	level, ok := api.ParseLevel(string(in.Level))
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid sponsor level")
		return
	}
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sponsors {
		if s.sponsors[i].ID != id {
			continue
		}
		s.sponsors[i].CompanyName = in.CompanyName
		s.sponsors[i].Description = in.Description
		s.sponsors[i].Level = level
		writeJSON(w, http.StatusOK, s.sponsors[i].Clone())
		return
	}
	writeMessage(w, http.StatusNotFound, "Sponsor not found")
}

func (s *Server) deleteSponsor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sponsors {
		if s.sponsors[i].ID == id {
			s.sponsors = append(s.sponsors[:i], s.sponsors[i+1:]...)
			writeMessage(w, http.StatusOK, "Sponsor deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Sponsor not found")
}

func (s *Server) listNominees(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]api.Nominee, 0, len(s.nominees))
	for _, n := range s.nominees {
		out = append(out, n.Clone())
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createNominee(w http.ResponseWriter, r *http.Request) {
	var in api.NomineeInput
	if err := decodeJSON(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(in.Round) == "" {
		writeMessage(w, http.StatusBadRequest, "round is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	nominee := api.Nominee{
		ID:         s.newID(),
		Round:      in.Round,
		Stage:      in.Stage,
		Categories: in.Categories,
		Created:    s.timestamp(),
	}.Clone()
	s.nominees = append(s.nominees, nominee)
	writeJSON(w, http.StatusCreated, nominee.Clone())
}

func (s *Server) updateNominee(w http.ResponseWriter, r *http.Request) {
	var in api.NomineeInput
	if err := decodeJSON(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.nominees {
		if s.nominees[i].ID != id {
			continue
		}
		s.nominees[i].Round = in.Round
		s.nominees[i].Stage = in.Stage
		s.nominees[i].Categories = api.Nominee{Categories: in.Categories}.Clone().Categories
		writeJSON(w, http.StatusOK, s.nominees[i].Clone())
		return
	}
	writeMessage(w, http.StatusNotFound, "Nominee not found")
}

func (s *Server) deleteNominee(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.nominees {
		if s.nominees[i].ID == id {
			s.nominees = append(s.nominees[:i], s.nominees[i+1:]...)
			writeMessage(w, http.StatusOK, "Nominee deleted")
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Nominee not found")
}
