// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Literal response texts.
const (
	greetingText = "Hello from http-contracts"
	greetingHTML = "<h1>" + greetingText + "</h1>"

	msgContactMissing     = "At least one of name, email or phone is missing"
	msgContactJSONMissing = "One of name, email or phone is missing."
	msgNameRequired       = "Name is required."
	msgAccountCreated     = "Thank you %s. Your account has been created."
	msgNoToken            = "No token."
	msgNotAuthorized      = "Log in failed. Not authorized."
	msgLoggedIn           = "Logged in."
	msgTitleRequired      = "Title is required."
	msgPostDeleted        = "Post %s deleted."
)

// Field names read from request bodies and headers.
const (
	fieldName  = "name"
	fieldEmail = "email"
	fieldPhone = "phone"
	fieldTitle = "title"

	paramID = "id"

	headerContentType = "Content-Type"
	headerAuthToken   = "x-auth-token"
)

var contactFields = []string{fieldName, fieldEmail, fieldPhone}
