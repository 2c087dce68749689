// Package yahoo is the league data source boundary: teams, weekly
// scoreboards, and available players from the Yahoo Fantasy API. The
// caller supplies an authenticated *http.Client (built from an oauth2
// token source); this package only knows the endpoints and the XML.
package yahoo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mww/roast_reporter/model"
	"github.com/mww/roast_reporter/platforms/yahoo/internal"
)

const YahooURL = "https://fantasysports.yahooapis.com"

type Client struct {
	url string
}

func New() (*Client, error) {
	return &Client{url: YahooURL}, nil
}

func NewForTest(url string) *Client {
	return &Client{url: url}
}

func (c *Client) GetLeagueName(httpClient *http.Client, leagueKey string) (string, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s", leagueKey)
	if err != nil {
		return "", err
	}

	if content == nil || content.League == nil || content.League.Name == "" {
		return "", errors.New("league name not found")
	}

	return content.League.Name, nil
}

// GetTeams returns the standings snapshot for every team in the league.
func (c *Client) GetTeams(httpClient *http.Client, leagueKey string) ([]model.Team, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s/standings", leagueKey)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Standings == nil ||
		content.League.Standings.Teams == nil ||
		content.League.Standings.Teams.Teams == nil {
		return nil, errors.New("league has no teams")
	}

	resp := make([]model.Team, 0, 12)
	for _, t := range content.League.Standings.Teams.Teams {
		team := model.Team{
			Key:  t.Key,
			Name: t.Name,
		}
		if t.Managers != nil && t.Managers.Managers != nil {
			team.OwnerName = t.Managers.Managers[0].Nickname
		}
		if t.TeamStandings != nil {
			team.PointsFor = t.TeamStandings.PointsFor
			team.PointsAgainst = t.TeamStandings.PointsAgainst
			if t.TeamStandings.Outcomes != nil {
				team.Wins = t.TeamStandings.Outcomes.Wins
				team.Losses = t.TeamStandings.Outcomes.Losses
				team.Ties = t.TeamStandings.Outcomes.Ties
			}
		}
		resp = append(resp, team)
	}

	return resp, nil
}

// GetScoreboard returns the week's matchups with float fantasy points.
// Matchups are passed through with however many participants the source
// reported; the analyzer decides what qualifies.
func (c *Client) GetScoreboard(httpClient *http.Client, leagueKey string, week int) ([]model.Matchup, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s/scoreboard;week=%d", leagueKey, week)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Scoreboard == nil ||
		content.League.Scoreboard.Matchups == nil ||
		content.League.Scoreboard.Matchups.Matchups == nil {
		return nil, errors.New("league scoreboard not found")
	}

	results := make([]model.Matchup, 0, 6)
	for _, m := range content.League.Scoreboard.Matchups.Matchups {
		matchup := model.Matchup{
			Week:          week,
			WinnerTeamKey: m.WinnerTeamKey,
			IsTied:        m.IsTied == 1,
		}
		if m.Teams != nil {
			for _, t := range m.Teams.Teams {
				if t.Key == "" || t.TeamPoints == nil {
					return nil, errors.New("invalid team in scoreboard result")
				}
				matchup.Teams = append(matchup.Teams, model.TeamScore{
					Team:   model.Team{Key: t.Key, Name: t.Name},
					Points: t.TeamPoints.Total,
				})
			}
		}
		results = append(results, matchup)
	}

	return results, nil
}

// GetAvailablePlayers returns the unrostered players in the league with
// their eligible positions.
func (c *Client) GetAvailablePlayers(httpClient *http.Client, leagueKey string) ([]model.Player, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s/players;status=A;sort=OR", leagueKey)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Players == nil ||
		content.League.Players.Players == nil {
		return nil, errors.New("league players not found")
	}

	results := make([]model.Player, 0, 25)
	for _, p := range content.League.Players.Players {
		player := model.Player{Key: p.Key}
		if p.Name != nil {
			player.FullName = p.Name.Full
		}
		if p.EligiblePositions != nil {
			for _, pos := range p.EligiblePositions.Positions {
				if parsed := model.ParsePosition(pos); parsed != model.POS_UNKNOWN {
					player.EligiblePositions = append(player.EligiblePositions, parsed)
				}
			}
		}
		results = append(results, player)
	}

	return results, nil
}

func (c *Client) yahooRequest(httpClient *http.Client, path string, args ...any) (*internal.FantasyContent, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from yahoo: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading yahoo response: %w", err)
	}

	var content internal.FantasyContent
	if err := xml.Unmarshal(body, &content); err != nil {
		return nil, fmt.Errorf("error parsing yahoo response: %w", err)
	}

	return &content, nil
}
