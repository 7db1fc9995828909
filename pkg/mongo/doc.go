// Package mongo opens MongoDB connections with the v2 driver using
// environment-driven pool settings and retries. The item store can read
// content entries from a collection in the configured database.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	items := item.NewMongoStore(db.Collection("items"))
package mongo
