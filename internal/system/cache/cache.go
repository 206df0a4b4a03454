/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// Cache is a TTL keyed in-memory store.
type Cache struct {
	items *gocache.Cache
	ttl   time.Duration
}

// NewCache creates a new cache with a TTL (time-to-live). Expired items are purged every
// cleanup interval.
func NewCache(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		items: gocache.New(defaultTTL, cleanupInterval),
		ttl:   defaultTTL,
	}
}

// Set adds an item to the cache with the default TTL.
func (c *Cache) Set(key string, value interface{}) {

	log.GetLogger().Debug(fmt.Sprint("Setting cache for key: ", key))
	c.items.Set(key, value, gocache.DefaultExpiration)
}

// SetWithTTL adds an item that expires after ttl. A non-positive ttl uses the default.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {

	if ttl <= 0 {
		ttl = c.ttl
	}
	c.items.Set(key, value, ttl)
}

// Get retrieves an item from the cache
func (c *Cache) Get(key string) (interface{}, bool) {

	value, found := c.items.Get(key)
	if !found {
		log.GetLogger().Debug(fmt.Sprint("Cache not found for key: ", key))
		return nil, false
	}
	return value, true
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.items.Delete(key)
}

// Count returns the number of cached items, including items that have expired but have not
// been cleaned up yet.
func (c *Cache) Count() int {
	return c.items.ItemCount()
}
