package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// Workbook layout shared by import and the downloadable template
const (
	teamsSheet   = "Teams"
	playersSheet = "Players"
)

// ImportServiceRepository defines the repository methods needed by ImportService
type ImportServiceRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	repository.ImportRepository
}

// ImportService loads teams and rosters from spreadsheets
type ImportService struct {
	log  logger.Logger
	repo ImportServiceRepository
}

// NewImportService creates a new ImportService
func NewImportService(log logger.Logger, repo ImportServiceRepository) *ImportService {
	return &ImportService{log: log, repo: repo}
}

// ImportResult summarises a bulk import. Warnings list rows that were skipped.
type ImportResult struct {
	TeamsAdded   int      `json:"teams_added"`
	PlayersAdded int      `json:"players_added"`
	Warnings     []string `json:"warnings"`
}

// roster collects the rows of one import before they are written
type roster struct {
	known    map[string]string // lower-cased name -> stored name
	newTeams []string
	players  []repository.RosterPlayer
	warnings []string
}

func (s *ImportService) newRoster(ctx context.Context) (*roster, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	r := &roster{known: make(map[string]string, len(teams)), warnings: []string{}}
	for _, t := range teams {
		r.known[strings.ToLower(t.Name)] = t.Name
	}
	return r, nil
}

// addTeam queues a new team and reports whether it was not already known
func (r *roster) addTeam(name string) bool {
	key := strings.ToLower(name)
	if _, ok := r.known[key]; ok {
		return false
	}
	r.known[key] = name
	r.newTeams = append(r.newTeams, name)
	return true
}

func (r *roster) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (s *ImportService) commit(ctx context.Context, r *roster, source string) (*ImportResult, error) {
	teams, players, err := s.repo.ImportRoster(ctx, r.newTeams, r.players)
	if err != nil {
		s.log.Error("import failed", "source", source, "error", err)
		return nil, repoError(err, "team")
	}
	s.log.Info("import complete", "source", source, "teams_added", teams, "players_added", players, "warnings", len(r.warnings))
	return &ImportResult{TeamsAdded: teams, PlayersAdded: players, Warnings: r.warnings}, nil
}

// ImportWorkbook reads a Teams sheet (names in column A) and a Players sheet
// (name, team, jersey in columns A to C), both with a header row. Rows with
// problems are skipped with a warning; a file that cannot be read writes nothing.
func (s *ImportService) ImportWorkbook(ctx context.Context, src io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "could not read Excel file")
	}
	defer f.Close()

	r, err := s.newRoster(ctx)
	if err != nil {
		return nil, err
	}

	if sheet := findSheet(f, teamsSheet); sheet == "" {
		r.warn("No '%s' sheet found in Excel file", teamsSheet)
	} else {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrValidation, "could not read Teams sheet")
		}
		for _, row := range dataRows(rows) {
			name := cell(row, 0)
			if name == "" {
				continue
			}
			if !r.addTeam(name) {
				r.warn("Team '%s' already exists - skipped", name)
			}
		}
	}

	if sheet := findSheet(f, playersSheet); sheet == "" {
		r.warn("No '%s' sheet found in Excel file", playersSheet)
	} else {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrValidation, "could not read Players sheet")
		}
		for i, row := range dataRows(rows) {
			rowNum := i + 2
			name, team, jersey := cell(row, 0), cell(row, 1), cell(row, 2)
			if name == "" && team == "" && jersey == "" {
				continue
			}
			if name == "" {
				r.warn("Row %d: Missing player name - skipped", rowNum)
				continue
			}
			if team == "" {
				r.warn("Row %d: Missing team for player '%s' - skipped", rowNum, name)
				continue
			}
			stored, ok := r.known[strings.ToLower(team)]
			if !ok {
				r.warn("Row %d: Team '%s' not found for player '%s' - skipped", rowNum, team, name)
				continue
			}
			r.players = append(r.players, repository.RosterPlayer{Name: name, TeamName: stored, JerseyNumber: jersey})
		}
	}

	return s.commit(ctx, r, "excel")
}

// ImportCSV reads team_name,player_name,jersey_number rows with an optional
// header. Teams that do not exist yet are created.
func (s *ImportService) ImportCSV(ctx context.Context, src io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "could not read CSV file")
	}

	r, err := s.newRoster(ctx)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		rowNum := i + 1
		if i == 0 && len(rec) > 0 && isCSVHeader(rec[0]) {
			continue
		}
		if len(rec) < 2 {
			if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
				continue
			}
			r.warn("Row %d: expected team_name,player_name[,jersey_number] - skipped", rowNum)
			continue
		}
		team, name, jersey := cell(rec, 0), cell(rec, 1), cell(rec, 2)
		if team == "" || name == "" {
			r.warn("Row %d: Missing team or player name - skipped", rowNum)
			continue
		}
		r.addTeam(team)
		r.players = append(r.players, repository.RosterPlayer{
			Name:         name,
			TeamName:     r.known[strings.ToLower(team)],
			JerseyNumber: jersey,
		})
	}

	return s.commit(ctx, r, "csv")
}

// Template returns an example workbook in the layout ImportWorkbook reads
func (s *ImportService) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(teamsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(playersSheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	teamHeader, err := headerStyle(f, "4472C4")
	if err != nil {
		return nil, err
	}
	playerHeader, err := headerStyle(f, "70AD47")
	if err != nil {
		return nil, err
	}

	sampleTeams := []string{"Team Alpha", "Team Beta", "Team Gamma", "Team Delta", "Team Epsilon", "Team Zeta"}

	f.SetCellValue(teamsSheet, "A1", "Team Name")
	f.SetCellStyle(teamsSheet, "A1", "A1", teamHeader)
	for i, name := range sampleTeams {
		f.SetCellValue(teamsSheet, fmt.Sprintf("A%d", i+2), name)
	}
	f.SetColWidth(teamsSheet, "A", "A", 30)

	for i, h := range []string{"Player Name", "Team", "Jersey Number"} {
		c, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(playersSheet, c, h)
	}
	f.SetCellStyle(playersSheet, "A1", "C1", playerHeader)

	row := 2
	for _, team := range sampleTeams {
		for n := 1; n <= 3; n++ {
			f.SetCellValue(playersSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Player %d", n))
			f.SetCellValue(playersSheet, fmt.Sprintf("B%d", row), team)
			f.SetCellValue(playersSheet, fmt.Sprintf("C%d", row), fmt.Sprint(n))
			row++
		}
	}
	f.SetColWidth(playersSheet, "A", "B", 25)
	f.SetColWidth(playersSheet, "C", "C", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// findSheet looks a sheet up by its capitalised or lower-case name
func findSheet(f *excelize.File, name string) string {
	lower := strings.ToLower(name)
	for _, candidate := range []string{name, lower} {
		for _, sheet := range f.GetSheetList() {
			if sheet == candidate {
				return sheet
			}
		}
	}
	return ""
}

// dataRows drops the header row
func dataRows(rows [][]string) [][]string {
	if len(rows) < 2 {
		return nil
	}
	return rows[1:]
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isCSVHeader(first string) bool {
	switch strings.ToLower(strings.TrimSpace(first)) {
	case "team", "team_name", "teamname":
		return true
	}
	return false
}
