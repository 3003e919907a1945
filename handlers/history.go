package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/services"
)

// recentHistoryLimit caps the history page at the newest records.
const recentHistoryLimit = 10

// History shows the caller's most recent records, newest first.
// GET /history
func History(c *gin.Context) {
	identity := CurrentIdentity(c)

	records, err := deps.Store.ListRecentHistory(identity.Username, recentHistoryLimit)
	if err != nil {
		render(c, http.StatusInternalServerError, "history.html", gin.H{
			"errors": []string{"Failed to load history"},
		})
		return
	}

	render(c, http.StatusOK, "history.html", gin.H{
		"username": identity.Username,
		"records":  records,
	})
}

// DeleteRecord removes one record when both id and owner match. A
// mismatched owner deletes nothing and redirects the same way.
// POST /delete_record/:id
func DeleteRecord(c *gin.Context) {
	identity := CurrentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/history")
		return
	}

	deps.Store.DeleteHistoryRecord(uint(id), identity.Username)
	c.Redirect(http.StatusFound, "/history")
}

// DeleteAllHistory wipes the caller's records only.
// POST /delete_all_history
func DeleteAllHistory(c *gin.Context) {
	identity := CurrentIdentity(c)
	deps.Store.DeleteAllHistory(identity.Username)
	c.Redirect(http.StatusFound, "/history")
}

// DownloadHistory streams the caller's full history as a PDF, or a
// plain notice when there is nothing to export. GET /download_history
func DownloadHistory(c *gin.Context) {
	identity := CurrentIdentity(c)

	records, err := deps.Store.ListAllHistory(identity.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load history")
		return
	}

	pdf, err := services.ExportHistoryPDF(identity.Username, records)
	if err != nil {
		if errors.Is(err, services.ErrNoHistory) {
			c.String(http.StatusOK, "No history found for this user.")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to generate document")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="history.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
