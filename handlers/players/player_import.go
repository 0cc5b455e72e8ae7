package players

import (
	"net/http"

	"frolftracker/services"
	"frolftracker/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportPlayers creates players in bulk from an XLSX upload
// @Summary Import players from an XLSX file
// @Description Create one player per row of the first sheet; the header row must contain a Name column
// @Tags Players
// @Accept mpfd
// @Produce json
// @Param file formData file true "XLSX file with a Name column"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]interface{} "Missing or unreadable file"
// @Router /players/import [post]
func ImportPlayers(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrMissingImportFile)
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrUnreadableWorkbook)
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrUnreadableWorkbook+": "+err.Error())
		return
	}
	defer xlsx.Close()

	sheetList := xlsx.GetSheetList()
	if len(sheetList) == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrNoImportablePlayers)
		return
	}

	rows, err := xlsx.GetRows(sheetList[0])
	if err != nil || len(rows) < 2 { // at least header and one data row
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrNoImportablePlayers)
		return
	}

	// Find the name column in the header row
	nameIdx := -1
	for i, cell := range rows[0] {
		switch cell {
		case "Name", "name", "Player", "player":
			nameIdx = i
		}
	}
	if nameIdx == -1 {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrMissingNameColumn)
		return
	}

	var names []string
	for _, row := range rows[1:] {
		if nameIdx >= len(row) || row[nameIdx] == "" {
			continue
		}
		names = append(names, row[nameIdx])
	}
	if len(names) == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request", ErrNoImportablePlayers)
		return
	}

	count, err := services.ImportPlayers(names)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": count})
}
