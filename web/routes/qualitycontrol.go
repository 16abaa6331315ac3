package routes

import (
	"net/http"

	"github.com/dasdy/stockroom/model"
)

type reviewInput struct {
	Decision string `json:"decision"`
	Comments string `json:"comments"`
}

func (s *ServerHandler) ListQCRecords(w http.ResponseWriter, _ *http.Request) {
	items, err := s.Store.QCRecords()
	if err != nil {
		storeError(w, err, "quality-control records")

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *ServerHandler) GetQCRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.QCRecord(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "quality-control record")

		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// ReviewQCRecord applies an operator decision. A rejection stores the comments
// as the record's reason.
func (s *ServerHandler) ReviewQCRecord(w http.ResponseWriter, r *http.Request) {
	var in reviewInput

	if !decodeBody(w, r, &in) {
		return
	}

	decision := model.QCStatus(in.Decision)
	if decision != model.QCApproved && decision != model.QCRejected {
		writeMessage(w, http.StatusBadRequest, "decision must be Approved or Rejected")

		return
	}

	if decision == model.QCRejected && in.Comments == "" {
		writeMessage(w, http.StatusBadRequest, "a rejection requires comments")

		return
	}

	rec, err := s.Store.QCRecord(r.PathValue("id"))
	if err != nil {
		storeError(w, err, "quality-control record")

		return
	}

	if rec.Status != model.QCPending {
		writeMessage(w, http.StatusBadRequest, "record was already reviewed")

		return
	}

	rec.Status = decision
	rec.Reason = ""

	if decision == model.QCRejected {
		rec.Reason = in.Comments
	}

	if err := s.Store.UpdateQCRecord(rec); err != nil {
		storeError(w, err, "quality-control record")

		return
	}

	writeJSON(w, http.StatusOK, rec)
}
