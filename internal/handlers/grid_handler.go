package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/internal/schedule"
	"github.com/nori1432/Laws-sub002/models"
)

// GridResponse is the rendered weekly grid: day columns, half-hour slot rows,
// the non-empty cells, and the sections still waiting for a slot. Cells absent
// from the map are empty.
type GridResponse struct {
	Days        []string                                      `json:"days"`
	Slots       []string                                      `json:"slots"`
	Cells       map[string]map[string][]schedule.SectionEntry `json:"cells"`
	Unscheduled []schedule.Section                            `json:"unscheduled"`
}

// GetScheduleGridHandler renders the weekly grid over the active sections,
// optionally filtered by course.
func GetScheduleGridHandler(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true).Order("id asc")
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	var sections []models.Section
	if err := query.Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sections"})
		return
	}

	view := make([]schedule.Section, 0, len(sections))
	for _, s := range sections {
		view = append(view, schedule.Section{ID: s.ID, Name: s.Name, Schedule: s.Schedule})
	}
	grid := schedule.NewGrid(view)

	resp := GridResponse{
		Days:        schedule.Days,
		Slots:       schedule.Slots(),
		Cells:       make(map[string]map[string][]schedule.SectionEntry),
		Unscheduled: grid.Unscheduled(),
	}
	for _, day := range resp.Days {
		for _, slot := range resp.Slots {
			cell := grid.Cell(day, slot)
			if len(cell) == 0 {
				continue
			}
			if resp.Cells[day] == nil {
				resp.Cells[day] = make(map[string][]schedule.SectionEntry)
			}
			resp.Cells[day][slot] = cell
		}
	}

	c.JSON(http.StatusOK, resp)
}

// extractJSON cuts the first complete JSON structure out of a model response,
// tolerating markdown fences and surrounding prose.
func extractJSON(raw string) string {
	if i := strings.Index(raw, "```json"); i != -1 {
		raw = raw[i+7:]
		if j := strings.Index(raw, "```"); j != -1 {
			raw = raw[:j]
		}
	} else if i := strings.Index(raw, "```"); i != -1 {
		raw = raw[i+3:]
		if j := strings.Index(raw, "```"); j != -1 {
			raw = raw[:j]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	candidate := raw[start : end+1]
	if !json.Valid([]byte(candidate)) {
		slog.Warn("AI response contained malformed JSON", "snippet", candidate)
		return ""
	}
	return candidate
}

// SuggestScheduleHandler asks Gemini for free weekly slots for a course's next
// section, then filters out anything colliding with the course's existing
// entries. Best effort: the admin still places the section by hand.
func SuggestScheduleHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Schedule suggestions are not configured"})
		return
	}

	courseID := c.Query("course_id")
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing course_id parameter"})
		return
	}

	var course models.Course
	if err := config.DB.Preload("Sections").First(&course, courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var existing []schedule.SectionEntry
	var taken []string
	for _, s := range course.Sections {
		if e, ok := schedule.Parse(s.Schedule); ok {
			existing = append(existing, schedule.SectionEntry{SectionID: s.ID, SectionName: s.Name, Entry: e})
			taken = append(taken, e.String())
		}
	}

	prompt := suggestPrompt(course.Name, taken)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	iter := config.GeminiClient.GenerateContentStream(ctx, genai.Text(prompt))
	var full strings.Builder
	for {
		resp, err := iter.Next()
		if err != nil {
			if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "no more items in iterator") {
				break
			}
			slog.Error("Error during AI stream", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get suggestions"})
			return
		}
		if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			for _, part := range resp.Candidates[0].Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					full.WriteString(string(txt))
				}
			}
		}
	}

	clean := extractJSON(full.String())
	if clean == "" {
		slog.Error("AI returned no valid JSON", "response", full.String())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned unusable data, try again"})
		return
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse AI suggestions"})
		return
	}

	// Keep only well-formed suggestions that do not land in a cell already
	// occupied by this course.
	var out []string
	for _, s := range parsed.Suggestions {
		e, ok := schedule.Parse(s)
		if !ok {
			continue
		}
		if collides(e, existing) {
			continue
		}
		out = append(out, e.String())
	}
	if len(out) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI produced no usable suggestions, try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": out})
}

func collides(e schedule.Entry, existing []schedule.SectionEntry) bool {
	for _, slot := range schedule.Slots() {
		if !e.Covers(e.Day, slot) {
			continue
		}
		for _, ex := range existing {
			if ex.Covers(e.Day, slot) {
				return true
			}
		}
	}
	return false
}

func suggestPrompt(courseName string, taken []string) string {
	return fmt.Sprintf(`
	**Task**: Suggest weekly time slots for a new section of the course %q at a tutoring academy.

	**Strict rules**:
	1. **JSON only**: respond with exactly one valid JSON object. No prose, no markdown fences, no comments.
	2. **Slot format**: every suggestion is a string "Day HH:MM-HH:MM" where Day is one of %s, times are 24-hour, between 08:00 and 22:00, aligned to half hours, and the slot lasts 1 to 2 hours.
	3. **Avoid taken slots**: do not overlap any of these existing sections: [%s].
	4. Return 3 to 5 suggestions.

	**Required JSON structure**:
	{ "suggestions": ["Mon 18:00-19:30", "Wed 10:00-11:00"] }
	`, courseName, strings.Join(schedule.Days, ", "), strings.Join(taken, ", "))
}
