package fixtures

// The fixture pages below each exercise one class of stability
// behaviour. Every page exposes the element under test as #box.

const staticHTML = `<!doctype html>
<html>
<head><title>static</title></head>
<body>
  <div id="box" style="width:120px;height:40px;background:#3a7">ready</div>
</body>
</html>`

const animatedHTML = `<!doctype html>
<html>
<head>
<title>animated</title>
<style>
@keyframes shake {
  0%   { transform: translateX(0); }
  50%  { transform: translateX(40px); }
  100% { transform: translateX(0); }
}
#box {
  width: 120px; height: 40px; background: #a37;
  position: relative;
  animation: shake 0.4s linear infinite;
}
</style>
</head>
<body>
  <div id="box">shaking</div>
</body>
</html>`

const pausedHTML = `<!doctype html>
<html>
<head>
<title>paused</title>
<style>
@keyframes shake {
  0%   { transform: translateX(0); }
  100% { transform: translateX(40px); }
}
#box {
  width: 120px; height: 40px; background: #77a;
  animation: shake 0.4s linear infinite;
  animation-play-state: paused;
}
</style>
</head>
<body>
  <div id="box">paused</div>
</body>
</html>`

// The transition page slides #box once, then clears the transition
// style when it finishes so the computed transition-duration reverts to
// 0s and the element reads as settled.
const transitionHTML = `<!doctype html>
<html>
<head>
<title>transition</title>
<style>
#box {
  width: 120px; height: 40px; background: #aa3;
  position: absolute; left: 0;
  transition: left 1.5s linear;
}
</style>
</head>
<body>
  <div id="box">sliding</div>
  <script>
    const box = document.getElementById('box')
    box.addEventListener('transitionend', () => {
      box.style.transition = 'none'
    })
    requestAnimationFrame(() => { box.style.left = '300px' })
  </script>
</body>
</html>`

// delayedHTML reveals #box after %d milliseconds, e.g. a fade-in that
// only starts once some background work completes.
const delayedHTML = `<!doctype html>
<html>
<head><title>delayed</title></head>
<body>
  <div id="box" style="display:none;width:120px;height:40px;background:#3aa">late</div>
  <script>
    setTimeout(() => {
      document.getElementById('box').style.display = 'block'
    }, %d)
  </script>
</body>
</html>`
