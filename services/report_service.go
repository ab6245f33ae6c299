package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/lib/risk"
	"github.com/epc-intel/models"
	"github.com/epc-intel/repositories"
)

// ReportService builds exportable risk reports over a user's portfolio
type ReportService struct {
	milestoneRepo *repositories.MilestoneRepository
	logRepo       *repositories.DailyLogRepository
}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{
		milestoneRepo: repositories.NewMilestoneRepository(),
		logRepo:       repositories.NewDailyLogRepository(),
	}
}

var riskReportHeader = []string{
	"Milestone ID", "Code", "Title", "Deadline (days)", "Total Budget ($)",
	"Total Spent ($)", "Remaining Budget ($)", "Projected Total ($)",
	"Avg Daily Spend ($)", "PoD (0-1)", "CoD per Day ($)", "CFTS (0-1)",
	"Risk Score (0-100)", "Risk Level", "Burn Efficiency",
	"Days of Cash Left", "Days Logged", "Top Advisory",
}

// RiskReport scores every visible milestone and returns report rows ranked
// by score, highest first
func (s *ReportService) RiskReport(userID string, isAdmin bool, asOf string) ([]dto.RiskReportRow, error) {
	asOfDate, err := asOfOrToday(asOf)
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestoneRepo.FindAll(userID, isAdmin)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RiskReportRow, 0, len(milestones))
	for _, ms := range milestones {
		logs, err := s.logRepo.FindByMilestoneID(ms.ID)
		if err != nil {
			return nil, err
		}

		metrics, _ := scoreWithSource(ms, logs, asOfDate)
		advisories := risk.Suggestions(ms, metrics)

		rows = append(rows, dto.RiskReportRow{
			MilestoneID:     ms.ID,
			Code:            ms.Code,
			Title:           ms.Title,
			DeadlineDays:    ms.DeadlineDays,
			TotalBudget:     ms.TotalCost,
			TotalSpent:      metrics.TotalSpent,
			RemainingBudget: metrics.RemainingBudget,
			ProjectedTotal:  metrics.ProjectedTotal,
			AvgDaily:        metrics.AvgDaily,
			PoD:             metrics.PoD,
			CoDPerDay:       metrics.CoDPerDay,
			CFTS:            metrics.CFTS,
			Score:           metrics.Score,
			RiskLevel:       risk.RiskLabel(metrics.Score),
			BurnEfficiency:  metrics.BurnEfficiency,
			DaysOfCashLeft:  metrics.DaysOfCashLeft,
			DaysLogged:      metrics.DaysLogged,
			TopAdvisory:     advisories[0].Message,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	return rows, nil
}

// RenderRiskCSV encodes report rows as CSV
func RenderRiskCSV(rows []dto.RiskReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(riskReportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.MilestoneID, r.Code, r.Title,
			strconv.Itoa(r.DeadlineDays),
			formatMoney(r.TotalBudget), formatMoney(r.TotalSpent),
			formatMoney(r.RemainingBudget), formatMoney(r.ProjectedTotal),
			formatMoney(r.AvgDaily),
			strconv.FormatFloat(r.PoD, 'f', -1, 64),
			formatMoney(r.CoDPerDay),
			strconv.FormatFloat(r.CFTS, 'f', -1, 64),
			strconv.Itoa(r.Score), r.RiskLevel,
			strconv.FormatFloat(r.BurnEfficiency, 'f', -1, 64),
			strconv.FormatFloat(r.DaysOfCashLeft, 'f', 1, 64),
			strconv.Itoa(r.DaysLogged), r.TopAdvisory,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// RenderRiskXLSX encodes report rows as an Excel workbook
func RenderRiskXLSX(rows []dto.RiskReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Risk Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(riskReportHeader))
	for i, h := range riskReportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.MilestoneID, r.Code, r.Title, r.DeadlineDays,
			r.TotalBudget, r.TotalSpent, r.RemainingBudget, r.ProjectedTotal,
			r.AvgDaily, r.PoD, r.CoDPerDay, r.CFTS,
			r.Score, r.RiskLevel, r.BurnEfficiency,
			r.DaysOfCashLeft, r.DaysLogged, r.TopAdvisory,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LogsCSV exports every daily log visible to the user as CSV
func (s *ReportService) LogsCSV(userID string, isAdmin bool) ([]byte, error) {
	logs, err := s.logRepo.FindForUser(userID, isAdmin)
	if err != nil {
		return nil, err
	}
	return RenderLogsCSV(logs), nil
}

// RenderLogsCSV encodes daily log entries as CSV
func RenderLogsCSV(logs []models.DailyLog) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"ID", "Milestone ID", "Date", "Wages", "Materials", "Machinery", "Total", "Notes"})
	for _, l := range logs {
		w.Write([]string{
			l.ID, l.MilestoneID, l.Date.Format("2006-01-02"),
			formatMoney(l.Wages), formatMoney(l.Materials), formatMoney(l.Machinery),
			formatMoney(l.Total()), l.Notes,
		})
	}

	w.Flush()
	return buf.Bytes()
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
