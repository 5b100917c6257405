package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/planner/genetic"
	"github.com/radekwlsk/go-route/utils"
)

var ErrZeroResults = errors.New("no results for place description")

type PlaceConfig struct {
	Description interface{} `json:"description"`
	Start       bool        `json:"start,omitempty"`
	End         bool        `json:"end,omitempty"`
}

var TravelModeOptions = []string{
	"driving",
	"walking",
	"bicycling",
	"transit",
}

var ModeOptions = []string{
	"name",
	"address",
	"id",
	"geo",
}

// Configuration is the request body: how place descriptions are written
// (mode), where to bias geocoding (region), how to travel, optional
// optimizer overrides and the places themselves. Exactly one place must be
// marked start; marking none as end, or marking the start itself, makes the
// route a round trip.
type Configuration struct {
	APIKey              string          `json:"apiKey"`
	Mode                string          `json:"mode"`
	Language            string          `json:"language,omitempty"`
	Region              string          `json:"region,omitempty"`
	TravelMode          string          `json:"travelMode,omitempty"`
	Optimizer           *genetic.Config `json:"optimizer,omitempty"`
	PlacesConfiguration []*PlaceConfig  `json:"places"`
}

type PlaceDetails struct {
	Name             string      `json:"name"`
	FormattedAddress string      `json:"formattedAddress"`
	Location         maps.LatLng `json:"location"`
}

type Place struct {
	Index   int          `json:"id"`
	PlaceID string       `json:"-"`
	Details PlaceDetails `json:"details"`
}

func (p *Place) SetDetails(ctx context.Context, c *maps.Client, lang string) error {
	r := &maps.PlaceDetailsRequest{
		PlaceID:  p.PlaceID,
		Language: lang,
	}
	resp, err := c.PlaceDetails(ctx, r)
	if err != nil {
		return err
	}
	p.Details = PlaceDetails{
		Name:             resp.Name,
		FormattedAddress: resp.FormattedAddress,
		Location:         resp.Geometry.Location,
	}
	return nil
}

// Step is one leg of the optimized route between two place indexes.
// Duration is stored in minutes.
type Step struct {
	From     int           `json:"from"`
	To       int           `json:"to"`
	Duration time.Duration `json:"time"`
	Distance int64         `json:"distance"`
}

// Route is the service response: the resolved places and the optimized
// visiting order with its legs, totals, printable summary and map document.
type Route struct {
	Places        []*Place           `json:"places"`
	StartPlace    *Place             `json:"-"`
	EndPlace      *Place             `json:"-"`
	RoundTrip     bool               `json:"roundTrip"`
	Order         []int              `json:"order"`
	Steps         []Step             `json:"steps"`
	TotalDistance int64              `json:"totalDistance"`
	TotalDuration time.Duration      `json:"totalDuration"`
	Summary       string             `json:"summary"`
	Map           *FeatureCollection `json:"map,omitempty"`
	TravelMode    maps.Mode          `json:"travelMode"`
}

// CreateSummary renders the visiting order as printable lines, one place per
// line with START and END marked, closed by the total distance.
func (r *Route) CreateSummary() string {
	var lines = make([]string, 0, len(r.Order)+1)
	last := len(r.Order) - 1
	for n, idx := range r.Order {
		p := r.Places[idx]
		switch {
		case n == 0:
			lines = append(lines, fmt.Sprintf("START %s", p.Details.Name))
		case n == last:
			lines = append(lines, fmt.Sprintf("END   %s%s", p.Details.Name,
				utils.IfThenElse(r.RoundTrip, " (round trip)", "")))
		default:
			lines = append(lines, fmt.Sprintf("%4d. %s", n, p.Details.Name))
		}
	}
	lines = append(lines, fmt.Sprintf("total distance: %.1f km", float64(r.TotalDistance)/1000.0))
	return strings.Join(lines, "\n")
}

// Description resolves a place written in one of the ModeOptions forms to a
// Google Maps place ID.
type Description interface {
	MapsPlaceID(ctx context.Context, c *maps.Client, region string) (string, error)
}

type AddressDescription struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (ad *AddressDescription) IsEmpty() bool {
	return ad.Name == "" && ad.Street == "" && ad.City == ""
}

func (ad *AddressDescription) toAddressString() (address string) {
	address = fmt.Sprintf(
		"%s, %s %s, %s%s",
		ad.Name,
		ad.Street,
		ad.Number,
		utils.IfThenElse(
			ad.PostalCode == "",
			ad.City,
			fmt.Sprintf("%s %s", ad.PostalCode, ad.City)),
		utils.IfThenElse(
			ad.Country == "",
			"",
			fmt.Sprintf(", %s", ad.Country)),
	)
	return
}

func (ad *AddressDescription) MapsPlaceID(ctx context.Context, c *maps.Client, region string) (string, error) {
	r := &maps.GeocodingRequest{
		Address: ad.toAddressString(),
		Region:  region,
	}
	resp, err := c.Geocode(ctx, r)
	if err != nil {
		return "", err
	}
	if len(resp) == 0 {
		return "", ErrZeroResults
	}
	return resp[0].PlaceID, nil
}

type NameDescription struct {
	Name string `json:"name"`
}

func (nd *NameDescription) MapsPlaceID(ctx context.Context, c *maps.Client, region string) (string, error) {
	r := &maps.TextSearchRequest{
		Query:  nd.Name,
		Region: region,
	}
	resp, err := c.TextSearch(ctx, r)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", ErrZeroResults
	}
	return resp.Results[0].PlaceID, nil
}

type PlaceIDDescription struct {
	PlaceID string `json:"place_id" mapstructure:"place_id"`
}

func (pid *PlaceIDDescription) MapsPlaceID(ctx context.Context, c *maps.Client, region string) (string, error) {
	return pid.PlaceID, nil
}

type GeoDescription struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (gd *GeoDescription) IsEmpty() bool {
	return gd.Lat == 0 && gd.Lng == 0
}

func (gd *GeoDescription) MapsPlaceID(ctx context.Context, c *maps.Client, region string) (string, error) {
	r := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: gd.Lat, Lng: gd.Lng},
	}
	resp, err := c.ReverseGeocode(ctx, r)
	if err != nil {
		return "", err
	}
	if len(resp) == 0 {
		return "", ErrZeroResults
	}
	return resp[0].PlaceID, nil
}
