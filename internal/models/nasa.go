// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package models

// APOD is the Astronomy Picture of the Day.
type APOD struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type"`
	Copyright   string `json:"copyright,omitempty"`
}

// DiameterRange is a min/max estimate in one unit.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// EstimatedDiameter holds a Near Earth Object's size in several units.
type EstimatedDiameter struct {
	Kilometers DiameterRange `json:"kilometers"`
	Meters     DiameterRange `json:"meters"`
	Miles      DiameterRange `json:"miles"`
	Feet       DiameterRange `json:"feet"`
}

// RelativeVelocity values are decimal strings as returned by NASA.
type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
	MilesPerHour        string `json:"miles_per_hour"`
}

// MissDistance values are decimal strings as returned by NASA.
type MissDistance struct {
	Astronomical string `json:"astronomical"`
	Lunar        string `json:"lunar"`
	Kilometers   string `json:"kilometers"`
	Miles        string `json:"miles"`
}

// CloseApproach describes one pass of an object near a body.
type CloseApproach struct {
	Date             string           `json:"close_approach_date"`
	DateFull         string           `json:"close_approach_date_full"`
	EpochDate        int64            `json:"epoch_date_close_approach"`
	RelativeVelocity RelativeVelocity `json:"relative_velocity"`
	MissDistance     MissDistance     `json:"miss_distance"`
	OrbitingBody     string           `json:"orbiting_body"`
}

// NearEarthObject is the reshaped object. CloseApproach holds only the first
// close-approach entry reported upstream, or nil when there is none.
type NearEarthObject struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	EstimatedDiameter      EstimatedDiameter `json:"estimated_diameter"`
	IsPotentiallyHazardous bool              `json:"is_potentially_hazardous"`
	CloseApproach          *CloseApproach    `json:"close_approach_data"`
}

// NEODate groups the objects reported for one calendar date.
type NEODate struct {
	Date    string            `json:"date"`
	Count   int               `json:"count"`
	Objects []NearEarthObject `json:"objects"`
}

// NEOFeed is the reshaped feed, ordered by date ascending.
type NEOFeed struct {
	ElementCount     int       `json:"element_count"`
	NearEarthObjects []NEODate `json:"near_earth_objects"`
}

// RoverCamera identifies a camera mounted on a rover.
type RoverCamera struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RoverID  int    `json:"rover_id"`
	FullName string `json:"full_name"`
}

// Rover summarises a Mars rover mission.
type Rover struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	LandingDate string        `json:"landing_date"`
	LaunchDate  string        `json:"launch_date"`
	Status      string        `json:"status"`
	MaxSol      int           `json:"max_sol,omitempty"`
	MaxDate     string        `json:"max_date,omitempty"`
	TotalPhotos int           `json:"total_photos,omitempty"`
	Cameras     []RoverCamera `json:"cameras,omitempty"`
}

// RoverPhoto is a single Mars rover image.
type RoverPhoto struct {
	ID        int         `json:"id"`
	Sol       int         `json:"sol"`
	Camera    RoverCamera `json:"camera"`
	ImgSrc    string      `json:"img_src"`
	EarthDate string      `json:"earth_date"`
	Rover     Rover       `json:"rover"`
}

// MarsRoverPhotos is the photo query result.
type MarsRoverPhotos struct {
	Photos []RoverPhoto `json:"photos"`
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Position is a J2000 position vector.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternions describe spacecraft attitude.
type Quaternions struct {
	Q0 float64 `json:"q0"`
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// EPICCoords duplicates the centroid for clients that read coords.*.
type EPICCoords struct {
	CentroidCoordinates Coordinates `json:"centroid_coordinates"`
}

// EPICImage is one DSCOVR EPIC natural-color Earth image.
type EPICImage struct {
	Identifier          string      `json:"identifier"`
	Caption             string      `json:"caption"`
	Image               string      `json:"image"`
	Version             string      `json:"version"`
	CentroidCoordinates Coordinates `json:"centroid_coordinates"`
	DSCOVRPosition      Position    `json:"dscovr_j2000_position"`
	LunarPosition       Position    `json:"lunar_j2000_position"`
	SunPosition         Position    `json:"sun_j2000_position"`
	AttitudeQuaternions Quaternions `json:"attitude_quaternions"`
	Date                string      `json:"date"`
	Coords              EPICCoords  `json:"coords"`
}

// LibraryItemData is the metadata of one Image and Video Library item.
type LibraryItemData struct {
	NASAID           string   `json:"nasa_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	MediaType        string   `json:"media_type"`
	DateCreated      string   `json:"date_created"`
	Center           string   `json:"center,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	Description508   string   `json:"description_508,omitempty"`
	SecondaryCreator string   `json:"secondary_creator,omitempty"`
	Photographer     string   `json:"photographer,omitempty"`
}

// LibraryLink is a link attached to an item or collection.
type LibraryLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Render string `json:"render,omitempty"`
	Prompt string `json:"prompt,omitempty"`
}

// LibraryItem is one search hit.
type LibraryItem struct {
	Href  string            `json:"href"`
	Data  []LibraryItemData `json:"data"`
	Links []LibraryLink     `json:"links,omitempty"`
}

// LibraryMetadata carries collection-level counters.
type LibraryMetadata struct {
	TotalHits int `json:"total_hits"`
}

// LibraryCollection is a page of search results.
type LibraryCollection struct {
	Version  string          `json:"version"`
	Href     string          `json:"href"`
	Items    []LibraryItem   `json:"items"`
	Metadata LibraryMetadata `json:"metadata"`
	Links    []LibraryLink   `json:"links,omitempty"`
}

// ImageLibrary is the Image and Video Library search result.
type ImageLibrary struct {
	Collection LibraryCollection `json:"collection"`
}
