// Package language turns the ISO 639-1 codes and BCP-47 tags carried by
// catalog records and user preferences into English display names.
package language
