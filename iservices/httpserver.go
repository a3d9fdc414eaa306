package iservices

var HTTPServerName = "http"
