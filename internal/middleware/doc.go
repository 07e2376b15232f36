// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有 JWT 身份驗證:保護需要登入的路由,並把解析出的
// 使用者資訊放進請求上下文。
package middleware
