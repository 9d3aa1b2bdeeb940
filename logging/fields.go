package logging

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases the zap field type so packages using the logger never import
// zap directly.
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

func Uint64(key string, val uint64) Field {
	return zap.Uint64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Error(err error) Field {
	return zap.Error(err)
}

// BidID logs a bid identifier under a consistent key.
func BidID(id string) Field {
	return zap.String("bid-id", id)
}

// AssetID logs the (asset, asset-id) pair identifying a listing.
func AssetID(asset string, id string) Field {
	return zap.String("asset-id", asset+"/"+id)
}
