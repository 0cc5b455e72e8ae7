package players

// Constants for error messages
const (
	ErrPlayerNotFound      = "No player was found with the id %d"
	ErrNotJSON             = "Requests must be JSON"
	ErrReadBody            = "Could not read the request body"
	ErrDatabase            = "Database error, please try again later"
	ErrMissingImportFile   = "The request must carry an XLSX upload in the 'file' field"
	ErrUnreadableWorkbook  = "Failed to parse XLSX file"
	ErrMissingNameColumn   = "No 'Name' column was found in the first sheet"
	ErrNoImportablePlayers = "The sheet contains no player rows"
)

// PlayerRequest model for creating or replacing a player
type PlayerRequest struct {
	Name string `json:"name"`
}
