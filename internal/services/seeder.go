// filepath: internal/services/seeder.go
package services

import (
	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
)

// defaultStations is the catalog seeded into an empty store on first run.
// The ids are stable so reseeding a wiped store keeps old analytics
// attributable.
var defaultStations = []models.Station{
	{
		ID:         "1",
		Name:       "Mainstage",
		Genre:      "Festival Hits, EDM, Top 40",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/mainstage-cover.svg",
		IsHLS:      true,
	},
	{
		ID:         "2",
		Name:       "Classics",
		Genre:      "Timeless Hits, 80s, 90s",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/classics-cover.svg",
		IsHLS:      true,
	},
	{
		ID:         "3",
		Name:       "Chill",
		Genre:      "Ambient, Lounge, Downtempo",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/chill-cover.svg",
		IsHLS:      true,
	},
	{
		ID:         "4",
		Name:       "Organic",
		Genre:      "Organic, Ambiental House",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/organic-cover.svg",
		IsHLS:      true,
	},
	{
		ID:         "5",
		Name:       "Afro",
		Genre:      "Afro House",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/afro-cover.svg",
		IsHLS:      true,
	},
	{
		ID:         "6",
		Name:       "House",
		Genre:      "Deep House, Electronic, Dance",
		StreamURL:  "https://dancewave.online/dance.aacp/playlist.m3u8",
		CoverImage: "/covers/house-cover.svg",
		IsHLS:      true,
	},
}

// SeedDefaultStations populates an empty catalog with the default station
// list and reports how many records were inserted. It runs on every
// startup and is a no-op once any station exists.
func (s *stationService) SeedDefaultStations() (int, error) {
	count, err := s.Repo.CountStations()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	logging.Log.Info("Station catalog is empty, seeding default stations...")
	for _, st := range defaultStations {
		station := st
		if _, err := s.Repo.CreateStation(&station); err != nil {
			return 0, err
		}
	}

	logging.Log.Infof("Seeded %d default stations.", len(defaultStations))
	return len(defaultStations), nil
}
