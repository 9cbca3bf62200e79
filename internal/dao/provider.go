package dao

import "github.com/google/wire"

var DaoProvider = wire.NewSet(NewTagDao, NewProfileDao, NewVenueDao, NewSupplierDao, NewEventDao)
