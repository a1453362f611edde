package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movieclub_api/db/redis"
	errorHandler "movieclub_api/pkg/error"
	"time"
)

const (
	moviesListCacheKey      = "movies:all"
	movieDataCachePrefix    = "movie:"
	genreDataCachePrefix    = "genre:"
	directorDataCachePrefix = "director:"
)

const movieCacheDuration = 5 * time.Minute

//------------------------------------------
//------------------------------------------

func getCache(key string, target interface{}) bool {
	if !redis.IsConnected() {
		return false
	}
	result, err := redis.GetRedis(context.Background(), key)
	if err != nil || result == "" {
		return false
	}
	if err := json.Unmarshal([]byte(result), target); err != nil {
		return false
	}
	return true
}

func setCache(key string, value interface{}) {
	if !redis.IsConnected() {
		return
	}
	jsonData, err := json.Marshal(value)
	if err != nil {
		return
	}
	err = redis.SetRedis(context.Background(), key, jsonData, movieCacheDuration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie cache: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

//------------------------------------------
//------------------------------------------

func getMoviesListCache(target interface{}) bool {
	return getCache(moviesListCacheKey, target)
}

func setMoviesListCache(value interface{}) {
	setCache(moviesListCacheKey, value)
}

func getMovieDataCache(title string, target interface{}) bool {
	return getCache(movieDataCachePrefix+title, target)
}

func setMovieDataCache(title string, value interface{}) {
	setCache(movieDataCachePrefix+title, value)
}

func getGenreDataCache(name string, target interface{}) bool {
	return getCache(genreDataCachePrefix+name, target)
}

func setGenreDataCache(name string, value interface{}) {
	setCache(genreDataCachePrefix+name, value)
}

func getDirectorDataCache(name string, target interface{}) bool {
	return getCache(directorDataCachePrefix+name, target)
}

func setDirectorDataCache(name string, value interface{}) {
	setCache(directorDataCachePrefix+name, value)
}
