package players

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"frolftracker/config"
	"frolftracker/mason"
	"frolftracker/models"
	"frolftracker/services"
	"frolftracker/utils/response"
	"frolftracker/utils/validation"

	"github.com/gin-gonic/gin"
)

// GetAllPlayers retrieves the player collection
// @Summary Get all players
// @Description Get the player collection as a hypermedia document
// @Tags Players
// @Produce vnd.mason+json
// @Success 200 {object} map[string]interface{}
// @Router /players/ [get]
func GetAllPlayers(c *gin.Context) {
	playerList, err := services.ListPlayers()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.AddControl("self", mason.Control{Href: mason.PlayersHref})
	body.AddControlAddPlayer()

	items := make([]mason.Document, 0, len(playerList))
	for _, player := range playerList {
		items = append(items, playerItem(player))
	}
	body.Set("items", items)

	response.Mason(c, http.StatusOK, body)
}

// CreatePlayer creates a new player
// @Summary Create a player
// @Description Create a player from a JSON body matching the player schema
// @Tags Players
// @Accept json
// @Produce vnd.mason+json
// @Param player body PlayerRequest true "Player to create"
// @Success 201 "Created, Location header points at the new player"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /players/ [post]
func CreatePlayer(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", ErrReadBody)
		return
	}
	if err := validation.Player(raw); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return
	}

	var req PlayerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return
	}

	player, err := services.CreatePlayer(req.Name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Header("Location", mason.PlayerHref(player.ID))
	c.Status(http.StatusCreated)
}

// GetPlayer retrieves a single player
// @Summary Get a player
// @Description Get one player with the controls to edit and delete it
// @Tags Players
// @Produce vnd.mason+json
// @Param player_id path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /players/{player_id}/ [get]
func GetPlayer(c *gin.Context) {
	id, player, ok := findPlayer(c)
	if !ok {
		return
	}

	body := mason.New()
	body.AddFrolfNamespace()
	body.Set("player_id", player.ID)
	body.Set("name", player.Name)
	body.AddControl("self", mason.Control{Href: mason.PlayerHref(id)})
	body.AddControl("profile", mason.Control{Href: config.PlayerProfile})
	body.AddControl("collection", mason.Control{Href: mason.PlayersHref})
	body.AddControlDeletePlayer(id)
	body.AddControlModifyPlayer(id)
	body.AddControlScoresByPlayer()

	response.Mason(c, http.StatusOK, body)
}

// UpdatePlayer replaces a player
// @Summary Replace a player
// @Description Replace the fields of a player with a JSON body matching the player schema
// @Tags Players
// @Accept json
// @Param player_id path int true "Player ID"
// @Param player body PlayerRequest true "New player content"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{} "Schema validation failed"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Failure 415 {object} map[string]interface{} "Request is not JSON"
// @Router /players/{player_id}/ [put]
func UpdatePlayer(c *gin.Context) {
	if c.ContentType() != "application/json" {
		response.Error(c, http.StatusUnsupportedMediaType, "Unsupported media type", ErrNotJSON)
		return
	}

	id, _, ok := findPlayer(c)
	if !ok {
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", ErrReadBody)
		return
	}
	if err := validation.Player(raw); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return
	}

	var req PlayerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON document", err.Error())
		return
	}

	if err := services.UpdatePlayer(id, req.Name); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePlayer deletes a player and, through the cascade, all its scores
// @Summary Delete a player
// @Description Delete a player; every score recorded by the player is deleted with it
// @Tags Players
// @Param player_id path int true "Player ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Router /players/{player_id}/ [delete]
func DeletePlayer(c *gin.Context) {
	id, _, ok := findPlayer(c)
	if !ok {
		return
	}

	if err := services.DeletePlayer(id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return
	}

	c.Status(http.StatusNoContent)
}

// findPlayer resolves the player_id path parameter. On failure it has already
// written the 404 error document.
func findPlayer(c *gin.Context) (int, *models.Player, bool) {
	id, err := strconv.Atoi(c.Param("player_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Not found",
			fmt.Sprintf("No player was found with the id %s", c.Param("player_id")))
		return 0, nil, false
	}

	player, err := services.FindPlayer(id)
	if errors.Is(err, services.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Not found", fmt.Sprintf(ErrPlayerNotFound, id))
		return 0, nil, false
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error", ErrDatabase)
		return 0, nil, false
	}
	return id, player, true
}

// playerItem builds one collection entry with its item links.
func playerItem(player models.Player) mason.Document {
	item := mason.New()
	item.Set("player_id", player.ID)
	item.Set("name", player.Name)
	item.AddControl("self", mason.Control{Href: mason.PlayerHref(player.ID)})
	item.AddControl("profile", mason.Control{Href: config.PlayerProfile})
	return item
}
