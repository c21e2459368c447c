// Package leaderboard projects per-user activity into a ranked listing.
package leaderboard

import (
	"sort"

	"contium/internal/user"
	id "contium/pkg/domain"
)

// Stats are the counters a user is ranked by.
type Stats struct {
	Verifications       int
	DocumentsRegistered int
	Badges              int
}

// Entry is one ranked row.
type Entry struct {
	User                user.User `json:"user"`
	VerificationsCount  int       `json:"verificationsCount"`
	DocumentsRegistered int       `json:"documentsRegistered"`
	NFTBadgesCount      int       `json:"nftBadgesCount"`
	Rank                int       `json:"rank"`
}

// Rank orders users by verification count, highest first. Ties keep the
// input order. Users without stats rank with zero counts. Ranks are 1-based
// and strictly increasing.
func Rank(users []user.User, stats map[id.UserID]Stats) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		st := stats[u.ID]
		entries = append(entries, Entry{
			User:                u,
			VerificationsCount:  st.Verifications,
			DocumentsRegistered: st.DocumentsRegistered,
			NFTBadgesCount:      st.Badges,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VerificationsCount > entries[j].VerificationsCount
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
