package errx

// WrapRedis wraps a Redis error with a consistent kind and message.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	return New(err, KindStore, RedisErrorMessage)
}
