// Package backend pkg/backend/errors.go
package backend

import "errors"

var (
	// ErrAuthorizationRequest covers failures talking to the authorization service.
	ErrAuthorizationRequest = errors.New("authorization service request failed")
	// ErrDeploymentRequest covers failures talking to the deployment resolver.
	ErrDeploymentRequest = errors.New("deployment service request failed")
	// ErrDeviceRegistryRequest covers failures talking to the device registry.
	ErrDeviceRegistryRequest = errors.New("device service request failed")
	// ErrCatalogRequest covers failures talking to the component catalog.
	ErrCatalogRequest = errors.New("component service request failed")
	// ErrPackageStoreRequest covers failures talking to the package store.
	ErrPackageStoreRequest = errors.New("package service request failed")
	// ErrUpdateServiceRequest covers failures talking to the update service.
	ErrUpdateServiceRequest = errors.New("update service request failed")
)
