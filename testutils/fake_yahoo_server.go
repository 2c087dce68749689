package testutils

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// TestLeagueKey is the only league the fake server knows about.
// Requests for any other key get Yahoo's forbidden error.
const TestLeagueKey = "461.l.12345"

type FakeYahooServer struct {
	s *httptest.Server
}

func NewFakeYahooServer() *FakeYahooServer {
	r := chi.NewRouter()
	// https://fantasysports.yahooapis.com/fantasy/v2/league/461.l.12345/standings
	r.Route("/fantasy/v2/league/{leagueKey}", func(r chi.Router) {
		r.Get("/", leagueMetadataHandler)
		r.Get("/standings", leagueStandingsHandler)
		// The scoreboard and players paths carry matrix parameters
		// (scoreboard;week=N, players;status=A;sort=OR) so they land in
		// a single wildcard segment.
		r.Get("/{resource}", leagueResourceHandler)
	})

	return &FakeYahooServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeYahooServer) Close() {
	f.s.Close()
}

func (f *FakeYahooServer) URL() string {
	return f.s.URL
}

func leagueMetadataHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueKey") != TestLeagueKey {
		serveForbidden(w)
		return
	}
	serveXML(w, leagueMetadataXML)
}

func leagueStandingsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueKey") != TestLeagueKey {
		serveForbidden(w)
		return
	}
	serveXML(w, standingsXML)
}

func leagueResourceHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueKey") != TestLeagueKey {
		serveForbidden(w)
		return
	}

	resource := chi.URLParam(r, "resource")
	switch {
	case strings.HasPrefix(resource, "scoreboard"):
		serveXML(w, scoreboardXML)
	case strings.HasPrefix(resource, "players"):
		serveXML(w, playersXML)
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("error"))
	}
}

func serveXML(w http.ResponseWriter, body string) {
	w.Header().Add("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func serveForbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(forbiddenMessage))
}

const forbiddenMessage = `<?xml version="1.0" encoding="UTF-8"?>
<error xml:lang="en-us" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/nfl.l.149975"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://www.yahooapis.com/v1/base.rng">
    <description>You are not allowed to view this page because you are not in this league.</description>
    <detail/>
</error>`

const leagueMetadataXML = `<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xml:lang="en-US" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/461.l.12345"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <league_key>461.l.12345</league_key>
    <league_id>12345</league_id>
    <name>Gridiron Grudge Match</name>
    <num_teams>4</num_teams>
    <current_week>5</current_week>
  </league>
</fantasy_content>`

const standingsXML = `<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xml:lang="en-US" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/461.l.12345/standings"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <league_key>461.l.12345</league_key>
    <name>Gridiron Grudge Match</name>
    <standings>
      <teams count="4">
        <team>
          <team_key>461.l.12345.t.1</team_key>
          <name>Victorious Secret</name>
          <managers>
            <manager>
              <nickname>Alice</nickname>
            </manager>
          </managers>
          <team_standings>
            <rank>1</rank>
            <outcome_totals>
              <wins>4</wins>
              <losses>0</losses>
              <ties>0</ties>
            </outcome_totals>
            <points_for>521.4</points_for>
            <points_against>432.1</points_against>
          </team_standings>
        </team>
        <team>
          <team_key>461.l.12345.t.2</team_key>
          <name>The Replacements</name>
          <managers>
            <manager>
              <nickname>Bob</nickname>
            </manager>
          </managers>
          <team_standings>
            <rank>2</rank>
            <outcome_totals>
              <wins>3</wins>
              <losses>1</losses>
              <ties>0</ties>
            </outcome_totals>
            <points_for>488.9</points_for>
            <points_against>455.0</points_against>
          </team_standings>
        </team>
        <team>
          <team_key>461.l.12345.t.3</team_key>
          <name>Bench Warmers</name>
          <managers>
            <manager>
              <nickname>Carol</nickname>
            </manager>
          </managers>
          <team_standings>
            <rank>3</rank>
            <outcome_totals>
              <wins>1</wins>
              <losses>3</losses>
              <ties>0</ties>
            </outcome_totals>
            <points_for>410.2</points_for>
            <points_against>470.6</points_against>
          </team_standings>
        </team>
        <team>
          <team_key>461.l.12345.t.4</team_key>
          <name>Taco Corp</name>
          <managers>
            <manager>
              <nickname>Dave</nickname>
            </manager>
          </managers>
          <team_standings>
            <rank>4</rank>
            <outcome_totals>
              <wins>0</wins>
              <losses>4</losses>
              <ties>0</ties>
            </outcome_totals>
            <points_for>389.7</points_for>
            <points_against>452.5</points_against>
          </team_standings>
        </team>
      </teams>
    </standings>
  </league>
</fantasy_content>`

const scoreboardXML = `<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xml:lang="en-US" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/461.l.12345/scoreboard"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <league_key>461.l.12345</league_key>
    <name>Gridiron Grudge Match</name>
    <scoreboard>
      <week>5</week>
      <matchups count="2">
        <matchup>
          <week>5</week>
          <is_tied>0</is_tied>
          <winner_team_key>461.l.12345.t.1</winner_team_key>
          <teams count="2">
            <team>
              <team_key>461.l.12345.t.1</team_key>
              <name>Victorious Secret</name>
              <team_points>
                <total>158.3</total>
              </team_points>
            </team>
            <team>
              <team_key>461.l.12345.t.4</team_key>
              <name>Taco Corp</name>
              <team_points>
                <total>74.2</total>
              </team_points>
            </team>
          </teams>
        </matchup>
        <matchup>
          <week>5</week>
          <is_tied>0</is_tied>
          <winner_team_key>461.l.12345.t.2</winner_team_key>
          <teams count="2">
            <team>
              <team_key>461.l.12345.t.2</team_key>
              <name>The Replacements</name>
              <team_points>
                <total>121.6</total>
              </team_points>
            </team>
            <team>
              <team_key>461.l.12345.t.3</team_key>
              <name>Bench Warmers</name>
              <team_points>
                <total>117.9</total>
              </team_points>
            </team>
          </teams>
        </matchup>
      </matchups>
    </scoreboard>
  </league>
</fantasy_content>`

const playersXML = `<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xml:lang="en-US" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/461.l.12345/players"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <league_key>461.l.12345</league_key>
    <name>Gridiron Grudge Match</name>
    <players count="5">
      <player>
        <player_key>461.p.33222</player_key>
        <player_id>33222</player_id>
        <name>
          <full>Jaylen Warren</full>
          <first>Jaylen</first>
          <last>Warren</last>
        </name>
        <primary_position>RB</primary_position>
        <eligible_positions>
          <position>RB</position>
          <position>W/R/T</position>
        </eligible_positions>
      </player>
      <player>
        <player_key>461.p.34048</player_key>
        <player_id>34048</player_id>
        <name>
          <full>Tank Dell</full>
          <first>Tank</first>
          <last>Dell</last>
        </name>
        <primary_position>WR</primary_position>
        <eligible_positions>
          <position>WR</position>
          <position>W/R/T</position>
        </eligible_positions>
      </player>
      <player>
        <player_key>461.p.32675</player_key>
        <player_id>32675</player_id>
        <name>
          <full>Tua Tagovailoa</full>
          <first>Tua</first>
          <last>Tagovailoa</last>
        </name>
        <primary_position>QB</primary_position>
        <eligible_positions>
          <position>QB</position>
        </eligible_positions>
      </player>
      <player>
        <player_key>461.p.33990</player_key>
        <player_id>33990</player_id>
        <name>
          <full>Chuba Hubbard</full>
          <first>Chuba</first>
          <last>Hubbard</last>
        </name>
        <primary_position>RB</primary_position>
        <eligible_positions>
          <position>RB</position>
          <position>W/R/T</position>
        </eligible_positions>
      </player>
      <player>
        <player_key>461.p.31012</player_key>
        <player_id>31012</player_id>
        <name>
          <full>Greg Zuerlein</full>
          <first>Greg</first>
          <last>Zuerlein</last>
        </name>
        <primary_position>K</primary_position>
        <eligible_positions>
          <position>K</position>
        </eligible_positions>
      </player>
    </players>
  </league>
</fantasy_content>`
