package apifootball

import (
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// API-Football wraps every payload in {"response": [...], "errors": ...}.
// The errors field is an array (sometimes an object) from the upstream API;
// when a failure happens locally this client reports it through Go errors
// instead, matching the same "no data" outcome at the operation boundary.
type fixturesEnvelope struct {
	Errors   apiErrors     `json:"errors"`
	Response []fixtureItem `json:"response"`
}

type playersEnvelope struct {
	Errors   apiErrors       `json:"errors"`
	Response []teamStatsItem `json:"response"`
}

// apiErrors tolerates the provider's three observed shapes: empty array,
// non-empty array of messages, and object keyed by failing parameter.
type apiErrors struct {
	raw []byte
}

func (e *apiErrors) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)
	return nil
}

func (e apiErrors) Present() bool {
	trimmed := strings.TrimSpace(string(e.raw))
	switch trimmed {
	case "", "null", "[]", "{}", `""`:
		return false
	}
	return true
}

func (e apiErrors) String() string {
	var messages []string
	if err := sonic.Unmarshal(e.raw, &messages); err == nil {
		return strings.Join(messages, "; ")
	}
	var keyed map[string]string
	if err := sonic.Unmarshal(e.raw, &keyed); err == nil {
		parts := make([]string, 0, len(keyed))
		for key, value := range keyed {
			parts = append(parts, key+": "+value)
		}
		return strings.Join(parts, "; ")
	}
	return string(e.raw)
}

type fixtureItem struct {
	Fixture struct {
		ID   int64  `json:"id"`
		Date string `json:"date"`
	} `json:"fixture"`
	Teams struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type teamStatsItem struct {
	Team    teamRef      `json:"team"`
	Players []playerItem `json:"players"`
}

type playerItem struct {
	Player struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Statistics []statisticsItem `json:"statistics"`
}

type statisticsItem struct {
	Games struct {
		Minutes  *int      `json:"minutes"`
		Position string    `json:"position"`
		Rating   flexValue `json:"rating"`
	} `json:"games"`
	Goals struct {
		Total   *int `json:"total"`
		Assists *int `json:"assists"`
		Saves   *int `json:"saves"`
	} `json:"goals"`
	Shots struct {
		Total *int `json:"total"`
		On    *int `json:"on"`
	} `json:"shots"`
	Passes struct {
		Total    *int      `json:"total"`
		Key      *int      `json:"key"`
		Accuracy flexValue `json:"accuracy"`
	} `json:"passes"`
	Tackles struct {
		Total         *int `json:"total"`
		Interceptions *int `json:"interceptions"`
	} `json:"tackles"`
	Duels struct {
		Total *int `json:"total"`
		Won   *int `json:"won"`
	} `json:"duels"`
	Cards struct {
		Yellow *int `json:"yellow"`
		Red    *int `json:"red"`
	} `json:"cards"`
}

// flexValue absorbs fields the provider serves inconsistently as a quoted
// string ("7.2", "85%"), a bare number, or null.
type flexValue struct {
	value string
	set   bool
}

func (v *flexValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		v.value, v.set = "", false
		return nil
	}
	if unquoted, err := strconv.Unquote(trimmed); err == nil {
		trimmed = unquoted
	}
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		v.value, v.set = "", false
		return nil
	}
	v.value, v.set = trimmed, true
	return nil
}

func (v flexValue) StringPtr() *string {
	if !v.set {
		return nil
	}
	out := v.value
	return &out
}

func (v flexValue) IntPtr() *int {
	if !v.set {
		return nil
	}
	cleaned := strings.TrimSuffix(v.value, "%")
	parsed, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return nil
	}
	out := int(parsed)
	return &out
}
