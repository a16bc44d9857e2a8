/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/server/log"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)

	return d
}

// respondJSON writes the payload as the JSON response body
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

// respondError writes the error payload with the given status code
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondMessage writes the plain acknowledgment payload
func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"message": message})
}

// doError logs the error and responds with the message
func doError(w http.ResponseWriter, internal string, err error, message string, statusCode int) {
	log.WithFields(log.Fields{
		"statusCode": statusCode,
	}).ErrorWrap(err, internal)

	respondError(w, message, statusCode)
}

func parseJSON(r *http.Request, into interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errors.Wrap(err, "decoding request body")
	}

	return nil
}

func parseQuery(r *http.Request, into interface{}) error {
	if err := queryDecoder.Decode(into, r.URL.Query()); err != nil {
		return errors.Wrap(err, "decoding query params")
	}

	return nil
}

// paramID reads the id path segment of the request
func paramID(r *http.Request) (uint, error) {
	vars := mux.Vars(r)

	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "parsing id")
	}

	return uint(id), nil
}

// swapPayload is the request body for the move endpoints
type swapPayload struct {
	FirstID  uint `json:"first_id"`
	SecondID uint `json:"second_id"`
}
