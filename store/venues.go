package store

import "context"

func reduceVenues(s VenuesState, a Action) VenuesState {
	switch a := a.(type) {
	case venuesPending:
		if a.gen < s.gen {
			return s
		}
		s.gen = a.gen
		s.Loading = true
		s.Err = ""
		return s
	case venuesLoaded:
		if a.gen < s.gen {
			return s
		}
		s.Loading = false
		s.Items = a.items
		return s
	}
	return s
}

// FetchVenues loads nearby venues. The places gateway falls back to the
// bundled dataset on any failure, so this never rejects.
func (s *Store) FetchVenues(ctx context.Context) {
	gen := s.nextGen(ResVenues)
	s.Dispatch(venuesPending{gen: gen})
	items := s.places.NearbyVenues(ctx)
	s.Dispatch(venuesLoaded{gen: gen, items: items})
}
