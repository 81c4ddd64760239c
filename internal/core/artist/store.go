// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "context"

// Repository is the read boundary for the artist catalogue.
//
// List returns every artist in catalogue order. Narrowing is the service's job.
type Repository interface {
	List(context context.Context) ([]Artist, error)
	Get(context context.Context, id int) (Artist, error)
}
