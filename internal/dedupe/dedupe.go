package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent read queries against the battle history store. Using a
// centralized singleflight.Group ensures that only one query runs for a
// given key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// HistoryGroup deduplicates recent-battle queries keyed by "history:<limit>".
var HistoryGroup singleflight.Group

// LeaderboardGroup deduplicates leaderboard queries keyed by
// "leaderboard:<limit>".
var LeaderboardGroup singleflight.Group

// ProfileGroup deduplicates profile lookups keyed by "profile:<name>".
var ProfileGroup singleflight.Group
