// Package device mirrors the wearable's locker database on the client.
//
// [Locker] stages apps in the local device_locker table, flushes pending rows
// to the device through a [Transport] and tells waiters when the device has
// confirmed an app. It is the client-side implementation of the device locker
// proxy consumed by the reconciliation engine.
package device
