package handlers

import (
	"io"
	"net/http"

	"github.com/abrezinsky/discscore/internal/services"
)

// maxUploadSize caps roster uploads
const maxUploadSize = 10 << 20

// formFile reads the named multipart file from the request
func formFile(w http.ResponseWriter, r *http.Request, field string) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, BadRequest("Invalid upload: " + err.Error())
	}
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, BadRequest("Missing " + field + " upload")
	}
	return file, nil
}

func (h *Handlers) importFile(w http.ResponseWriter, r *http.Request, field string, run func(io.Reader) (*services.ImportResult, error)) {
	file, err := formFile(w, r, field)
	if err != nil {
		respondError(w, err)
		return
	}
	defer file.Close()

	result, err := run(file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleImportExcel imports teams and players from an xlsx workbook
func (h *Handlers) handleImportExcel(w http.ResponseWriter, r *http.Request) {
	h.importFile(w, r, "excel_file", func(src io.Reader) (*services.ImportResult, error) {
		return h.Import.ImportWorkbook(r.Context(), src)
	})
}

// handleImportCSV imports players from a team,player,jersey CSV
func (h *Handlers) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	h.importFile(w, r, "csv_file", func(src io.Reader) (*services.ImportResult, error) {
		return h.Import.ImportCSV(r.Context(), src)
	})
}

// handleImportTemplate downloads an example roster workbook
func (h *Handlers) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := h.Import.Template()
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="roster_template.xlsx"`)
	w.Write(data)
}
